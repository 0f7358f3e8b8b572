package ingestion_test

import (
	"testing"

	"Feira/internal/domain/ingestion"
)

func TestTokenizeSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "virgula e conectivo",
			input: "Arroz, Feijão e Leite",
			want:  []string{"Arroz", "Feijão", "Leite"},
		},
		{
			name:  "quebras de linha",
			input: "Arroz\nFeijão\nLeite",
			want:  []string{"Arroz", "Feijão", "Leite"},
		},
		{
			name:  "conectivo repetido",
			input: "pão e ovos e café",
			want:  []string{"pão", "ovos", "café"},
		},
		{
			name:  "conectivo dentro de palavra nao separa",
			input: "creme de leite",
			want:  []string{"creme de leite"},
		},
		{
			name:  "fragmentos vazios e de um caractere descartados",
			input: "a, , arroz,,b\n\nuva",
			want:  []string{"arroz", "uva"},
		},
		{
			name:  "entrada vazia",
			input: "",
			want:  nil,
		},
		{
			name:  "so separadores",
			input: ", \n ,",
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ingestion.Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %d candidatos, esperava %d", tt.input, len(got), len(tt.want))
			}
			for i, candidate := range got {
				if candidate.Display != tt.want[i] {
					t.Errorf("candidato %d = %q, esperava %q", i, candidate.Display, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeQuantityStripping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantDisplay  string
		wantMatching string
	}{
		{
			name:         "quantidade com unidade colada",
			input:        "2kg arroz",
			wantDisplay:  "2kg arroz",
			wantMatching: "arroz",
		},
		{
			name:         "fracao com unidade longa e de",
			input:        "1/2 duzia de ovos",
			wantDisplay:  "1/2 duzia de ovos",
			wantMatching: "ovos",
		},
		{
			name:         "quantidade com unidade separada",
			input:        "2 kg arroz",
			wantDisplay:  "2 kg arroz",
			wantMatching: "arroz",
		},
		{
			name:         "numeral solto",
			input:        "12 ovos",
			wantDisplay:  "12 ovos",
			wantMatching: "ovos",
		},
		{
			name:         "sem quantidade fica intacto",
			input:        "detergente",
			wantDisplay:  "detergente",
			wantMatching: "detergente",
		},
		{
			name:         "so quantidade usa o fragmento inteiro",
			input:        "1/2",
			wantDisplay:  "1/2",
			wantMatching: "1/2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ingestion.Tokenize(tt.input)
			if len(got) != 1 {
				t.Fatalf("Tokenize(%q) = %d candidatos, esperava 1", tt.input, len(got))
			}
			if got[0].Display != tt.wantDisplay {
				t.Errorf("Display = %q, esperava %q", got[0].Display, tt.wantDisplay)
			}
			if got[0].Matching != tt.wantMatching {
				t.Errorf("Matching = %q, esperava %q", got[0].Matching, tt.wantMatching)
			}
		})
	}
}

func TestTokenizeLeadingBullets(t *testing.T) {
	t.Parallel()

	got := ingestion.Tokenize("- arroz, • feijão, *** leite")
	want := []string{"arroz", "feijão", "leite"}

	if len(got) != len(want) {
		t.Fatalf("esperava %d candidatos, veio %d", len(want), len(got))
	}
	for i, candidate := range got {
		if candidate.Display != want[i] {
			t.Errorf("candidato %d = %q, esperava %q", i, candidate.Display, want[i])
		}
	}
}

func TestTokenizeQuantityAndDisplayAreIndependent(t *testing.T) {
	t.Parallel()

	got := ingestion.Tokenize("2kg arroz, 1/2 duzia de ovos")
	if len(got) != 2 {
		t.Fatalf("esperava 2 candidatos, veio %d", len(got))
	}

	// A exibição conserva a quantidade, o casamento a descarta: duas strings
	// observáveis separadamente.
	if got[0].Display != "2kg arroz" || got[0].Matching != "arroz" {
		t.Errorf("candidato 0 = %+v", got[0])
	}
	if got[1].Display != "1/2 duzia de ovos" || got[1].Matching != "ovos" {
		t.Errorf("candidato 1 = %+v", got[1])
	}
}
