package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Fixed sample files offered from the import dialogs. Kept in sync with the
// row validators by hand; there is no generation step.
const (
	userTemplateCSV = `name,email,role,phone_number,address,city,zip_code,notes,is_active
Alice Keller,alice@example.com,customer,+36301234567,Fő utca 12,Budapest,1011,Weekly order,true
Bob the Driver,,driver,+36307654321,,,,Morning route,true
`

	productTemplateCSV = `sku,name,name_local,unit,price,stock,is_active
VEG-001,Carrot,Sárgarépa,kg,2.50,120,true
VEG-002,Potato,Burgonya,kg,1.20,300,true
VEG-003,Basil,Bazsalikom,piece,3.00,40,true
`
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

func (h *TemplateHandler) UserTemplate(c echo.Context) error {
	return serveTemplate(c, "users_template.csv", userTemplateCSV)
}

func (h *TemplateHandler) ProductTemplate(c echo.Context) error {
	return serveTemplate(c, "products_template.csv", productTemplateCSV)
}

func serveTemplate(c echo.Context, filename, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(body))
}
