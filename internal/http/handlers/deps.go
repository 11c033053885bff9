package handlers

import (
	"satyaphoto/internal/config"
	"satyaphoto/internal/mediastore"
	"satyaphoto/internal/repos"
	"satyaphoto/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SiteHandler    *SiteHandler
	GalleryHandler *GalleryHandler
	SearchHandler  *SearchHandler
	ContactHandler *ContactHandler
	AdminHandler   *AdminHandler
	MediaHandler   *MediaHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, blobs mediastore.Store) *Deps {
	mediaRepo := repos.NewMediaRepo(db)
	inquiryRepo := repos.NewInquiryRepo(db)
	packageRepo := repos.NewPackageRepo(db)

	catalogSvc := services.NewCatalogService(mediaRepo, blobs)
	mailSvc := services.NewEmailService(cfg.Email)
	inquirySvc := services.NewInquiryService(inquiryRepo, mailSvc)

	return &Deps{
		SiteHandler:    &SiteHandler{Catalog: catalogSvc, PackageRepo: packageRepo},
		GalleryHandler: &GalleryHandler{Catalog: catalogSvc},
		SearchHandler:  &SearchHandler{Catalog: catalogSvc},
		ContactHandler: &ContactHandler{Inquiries: inquirySvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Inquiries: inquirySvc},
		MediaHandler:   &MediaHandler{Blobs: blobs},
	}
}
