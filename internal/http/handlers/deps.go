package handlers

import (
	"zosswater/internal/repos"
	"zosswater/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	ProductHandler   *ProductHandler
	ServiceHandler   *ServiceHandler
	InventoryHandler *InventoryHandler
	BlogHandler      *BlogHandler
	CatalogHandler   *CatalogHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	userRepo := auth.Users
	productRepo := repos.NewProductRepo(db)
	templateRepo := repos.NewTemplateRepo(db)
	serviceRepo := repos.NewServiceRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	blogRepo := repos.NewBlogRepo(db)
	catalogRepo := repos.NewCatalogRepo(db)

	productSvc := services.NewProductService(productRepo, templateRepo, userRepo)
	ticketSvc := services.NewTicketService(serviceRepo)
	invSvc := services.NewInventoryService(invRepo)
	contentSvc := services.NewContentService(blogRepo, catalogRepo)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		ProductHandler:   &ProductHandler{Products: productSvc},
		ServiceHandler:   &ServiceHandler{Tickets: ticketSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		BlogHandler:      &BlogHandler{Content: contentSvc},
		CatalogHandler:   &CatalogHandler{Content: contentSvc},
	}
}
