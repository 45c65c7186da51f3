package handlers

import (
	"sbsoverseas/internal/config"
	"sbsoverseas/internal/content"
	"sbsoverseas/internal/repos"
	"sbsoverseas/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ContentHandler    *ContentHandler
	ProductHandler    *ProductHandler
	SearchHandler     *SearchHandler
	UploadHandler     *UploadHandler
	SubmissionHandler *SubmissionHandler
	NewsletterHandler *NewsletterHandler
	AIHandler         *AIHandler
	AdminHandler      *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, store *content.Store, auth *services.AuthService, gen Generator) *Deps {
	subRepo := repos.NewSubmissionRepo(db)
	newsRepo := repos.NewNewsletterRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(store)
	subSvc := services.NewSubmissionService(subRepo)

	subH := &SubmissionHandler{Subs: subSvc}

	return &Deps{
		ContentHandler:    &ContentHandler{Store: store},
		ProductHandler:    &ProductHandler{Catalog: catalogSvc},
		SearchHandler:     &SearchHandler{Catalog: catalogSvc},
		UploadHandler:     &UploadHandler{Dir: cfg.UploadsDir},
		SubmissionHandler: subH,
		NewsletterHandler: &NewsletterHandler{News: newsRepo},
		AIHandler:         &AIHandler{Gen: gen},
		AdminHandler:      &AdminHandler{Users: userRepo, Subs: subSvc, News: newsRepo},
	}
}
