package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, templateHandler *TemplateHandler, userHandler *UserHandler, productHandler *ProductHandler) {
	v1 := server.Group("/api/v1")

	v1.POST("/imports/users", importHandler.ImportUsers)
	v1.POST("/imports/products", importHandler.ImportProducts)
	v1.GET("/imports/users/template", templateHandler.UserTemplate)
	v1.GET("/imports/products/template", templateHandler.ProductTemplate)

	v1.POST("/users", userHandler.CreateUser)
	v1.GET("/users/:id", userHandler.GetUserByID)

	v1.POST("/products", productHandler.CreateProduct)
	v1.GET("/products/export", productHandler.ExportProducts)
	v1.GET("/products/:id", productHandler.GetProductByID)
}
