package swagger

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	uiPath   = "/swagger"
	specPath = "/swagger/openapi.yml"
)

var uiTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} · Swagger</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({
        url: '{{.SpecURL}}',
        dom_id: '#swagger-ui',
        presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
        layout: "BaseLayout"
      });
    };
  </script>
</body>
</html>`))

// renderUI собирает страницу один раз при регистрации маршрутов.
func renderUI(title string) []byte {
	var buf bytes.Buffer
	_ = uiTemplate.Execute(&buf, struct{ Title, SpecURL string }{title, specPath})
	return buf.Bytes()
}

// RegisterRoutes подключает Swagger UI и отдачу OpenAPI-спецификации.
// Пустая спецификация отдаётся как 204.
func RegisterRoutes(mux chi.Router, spec []byte) {
	page := renderUI("Secret Santa Service")

	mux.Get(uiPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
	mux.Get(uiPath+"/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, uiPath, http.StatusMovedPermanently)
	})
	mux.Get(specPath, func(w http.ResponseWriter, r *http.Request) {
		if len(spec) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec)
	})
}
