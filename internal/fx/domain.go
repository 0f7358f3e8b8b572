package fx

import (
	"Feira/config"
	"Feira/internal/domain/auth"
	"Feira/internal/domain/ingestion"
	"Feira/internal/domain/list"
	"Feira/internal/domain/shared"
	"Feira/internal/domain/user"
	"Feira/internal/infrastructure"
	"Feira/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,

		newGoogleClientID,
		newAuthService,

		newIngestionService,
		newListNotifier,
		newListService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.UserServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newGoogleClientID(cfg *config.Config) string {
	googleClientID := ""
	if cfg.GoogleOAuth.Enabled {
		if cfg.GoogleOAuth.ClientID == "" {
			logger.Warn().
				Msg("GOOGLE_OAUTH_ENABLED=true mas GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
		} else {
			googleClientID = cfg.GoogleOAuth.ClientID
			logger.Info().
				Int("client_id_length", len(googleClientID)).
				Msg("Google OAuth habilitado")
		}
	} else {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
	}
	return googleClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, googleClientID)
}

func newIngestionService() *ingestion.Service {
	return ingestion.NewService(ingestion.NewDefaultCategorizer())
}

func newListNotifier() *list.Notifier {
	return list.NewNotifier()
}

func newListService(
	repo *infrastructure.ListRepository,
	userChecker *shared.UserCheckerService,
	ingestionSvc *ingestion.Service,
	notifier *list.Notifier,
) *list.Service {
	return &list.Service{
		BaseService: shared.BaseService{UserChecker: userChecker},
		Repository:  repo,
		Ingestion:   ingestionSvc,
		Notifier:    notifier,
	}
}
