package ingestion

// DefaultCorpus devolve a tabela embutida de palavras-chave por categoria.
// As palavras já estão em minúsculas e sem acento (a entrada é normalizada
// antes do casamento, então variantes acentuadas seriam redundantes). Algumas
// palavras aparecem em mais de uma categoria de propósito ("palmito",
// "integral", "hamburguer"): o desempate é a ordem de declaração.
func DefaultCorpus() []CategoryKeywords {
	return []CategoryKeywords{
		{
			Label: "Hortifruti",
			Keywords: []string{
				// Frutas
				"banana", "maca", "uva", "laranja", "limao", "mamao",
				"melancia", "melao", "abacaxi", "manga", "morango", "pera", "abacate",
				"maracuja", "kiwi", "caqui", "goiaba", "pessego", "ameixa",
				"cereja", "figo", "framboesa", "graviola", "jabuticaba", "jaca", "mexerica", "tangerina",
				"bergamota", "nectarina", "pitaya", "coco", "amora", "mirtilo", "blueberry", "roma",
				// Verduras e legumes
				"batata", "cebola", "tomate", "cenoura", "alface", "alho", "couve", "pimentao",
				"abobrinha", "berinjela", "chuchu", "pepino", "beterraba", "brocolis",
				"repolho", "rucula", "salsinha", "cebolinha", "coentro", "cheiro verde",
				"mandioca", "aipim", "macaxeira", "batata doce", "inhame", "quiabo", "vagem", "gengibre",
				"hortela", "manjericao", "espinafre", "milho", "milho verde",
				"palmito", "rabanete", "nabo", "agriao", "chicoria",
				"ervilha torta", "batata salsa", "mandioquinha", "cara", "maxixe", "jilo",
				"abobora", "cabotia", "cogumelo", "shitake", "shimeji", "champignon",
				"alecrim", "louro", "oregano fresco", "salsa", "tempero verde", "folhas", "salada",
			},
		},
		{
			Label: "Açougue",
			Keywords: []string{
				// Boi
				"carne", "bife", "moida", "picanha", "alcatra", "contra file", "file",
				"acem", "musculo", "costela", "figado", "boi", "patinho",
				"lagarto", "cupim", "maminha", "fraldinha", "coxao mole", "coxao duro",
				"ossobuco", "chuleta", "bisteca bovina", "carne de sol", "charque", "carne seca",
				// Frango
				"frango", "peito de frango", "asa", "coxa", "sobrecoxa", "coracao",
				"file de frango", "sassami", "tulipa", "meio da asa", "passarinho", "frango inteiro",
				"galinha", "moela",
				// Porco
				"porco", "bisteca", "linguica", "salsicha", "bacon", "presunto", "calabresa",
				"paio", "mortadela", "salame", "lombo", "pernil", "costelinha", "suino",
				"toucinho", "panceta", "torresmo", "copa",
				// Peixe
				"peixe", "file de peixe", "camarao", "sardinha", "hamburguer", "empanado",
				"nuggets", "tilapia", "salmao", "bacalhau", "merluza", "atum fresco",
				"lula", "polvo", "marisco", "siri", "caranguejo",
				// Outros
				"carne de panela", "carne para assar", "churrasco", "espetinho", "kafta",
			},
		},
		{
			Label: "Laticínios",
			Keywords: []string{
				"leite", "queijo", "mussarela", "mucarela", "prato", "parmesao", "minas",
				"ricota", "catupiry", "requeijao", "iogurte", "danone", "yakult", "manteiga",
				"margarina", "nata", "creme de leite", "leite condensado", "doce de leite", "chantilly",
				"leite fermentado", "coalhada", "ovo", "ovos", "provolone", "gorgonzola", "brie", "gouda",
				"reino", "fatiado", "polenguinho", "petit suisse", "leite em po", "ninho",
				"molico", "desnatado", "integral", "sem lactose", "fondue",
			},
		},
		{
			Label: "Mercearia",
			Keywords: []string{
				// Grãos e básicos
				"arroz", "feijao", "macarrao", "oleo", "azeite", "sal",
				"acucar", "cafe", "farinha", "fuba", "milho de pipoca",
				"ervilha", "lentilha", "grao de bico", "soja", "trigo", "amido", "maizena",
				// Matinais e lanches
				"biscoito", "bolacha", "torrada", "cereal", "aveia", "granola", "mel", "chocolate",
				"achocolatado", "nescau", "toddy", "bombom", "barra de cereal", "geleia", "chocolates",
				"bala", "doce", "pacoca", "amendoim", "salgadinho", "batata palha", "chips", "doritos",
				// Molhos e conservas
				"molho", "extrato", "pomarola", "maionese", "ketchup", "mostarda", "vinagre", "shoyu",
				"palmito", "azeitona", "cogumelo em conserva", "picles", "seleta", "milho em lata",
				"sardinha em lata", "atum em lata",
				// Instantâneos
				"miojo", "lamen", "sopa", "pipoca", "gelatina", "pudim", "leite de coco", "creme de cebola",
				// Temperos
				"tempero", "pimenta", "oregano", "caldo", "sazon", "knorr", "maggi", "ajinomoto",
				"cominho", "colorau", "curry", "chimichurri", "paprica", "canela", "cravo",
				// Pets
				"racao", "petisco", "areia de gato", "sache", "whiskas", "pedigree",
			},
		},
		{
			Label: "Padaria",
			Keywords: []string{
				"pao", "frances", "baguete", "ciabatta", "sonho", "bolo", "torta", "pao de queijo",
				"salgado", "coxinha", "brioche", "pao de forma", "integral", "bisnaguinha",
				"hamburguer", "hot dog", "hotdog", "pao de alho", "croissant", "rosquinha", "panetone",
				"chocotone", "carolina", "broa", "cuca",
			},
		},
		{
			Label: "Bebidas",
			Keywords: []string{
				"agua", "suco", "refrigerante", "coca", "guarana", "pepsi", "fanta",
				"cerveja", "vinho", "vodka", "wisky", "whisky", "gin", "cachaca", "energetico",
				"cha", "mate", "agua de coco", "tonica", "soda", "sprite",
				"antarctica", "skol", "brahma", "heineken", "long neck", "latao", "espumante", "licor",
				"gatorade", "isotonico", "h2oh", "schweppes", "campari", "pinga", "suco de uva",
			},
		},
		{
			Label: "Limpeza",
			Keywords: []string{
				"sabao", "detergente", "ype", "minuano", "amaciante", "agua sanitaria",
				"candida", "cloro", "desinfetante", "veja", "multiuso", "alcool",
				"esponja", "bucha", "bombril", "la de aco", "palha de aco", "saco de lixo",
				"lixeira", "pano", "flanela", "rodo", "vassoura", "sabao em po",
				"omo", "tixan", "vanish", "tira manchas", "lustra moveis", "limpa vidro", "limpa piso",
				"inseticida", "sbp", "raid", "naftalina", "pastilha", "desengordurante", "cera",
				"papel toalha", "guardanapo", "fosforo", "acendedor",
			},
		},
		{
			Label: "Higiene",
			Keywords: []string{
				"papel higienico", "sabonete", "shampoo", "xampu", "condicionador",
				"pasta de dente", "creme dental", "escova de dente", "fio dental", "enxaguante", "listerine",
				"colgate", "sorriso", "desodorante", "perfume", "hidratante", "creme", "protetor solar",
				"cotonete", "hastes flexiveis", "algodao", "absorvente", "fralda",
				"lenco", "gilete", "lamina", "barbear", "espuma de barbear", "pos barba", "talco",
				"esmalte", "acetona", "lixa", "cortador", "pinca", "maquiagem", "rimel", "batom",
			},
		},
	}
}
