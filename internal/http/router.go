package httpapi

import (
	"expvar"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /catalog", app.getCatalogHandler)

	mux.HandleFunc("GET /cart", app.getCartHandler)
	mux.HandleFunc("DELETE /cart", app.clearCartHandler)
	mux.HandleFunc("POST /cart/items", app.addCartItemHandler)
	mux.HandleFunc("PUT /cart/items/{name}", app.setCartItemHandler)
	mux.HandleFunc("DELETE /cart/items/{name}", app.deleteCartItemHandler)
	mux.HandleFunc("POST /cart/reorder", app.reorderHandler)

	mux.HandleFunc("POST /orders", app.submitOrderHandler)
	mux.HandleFunc("GET /orders", app.staffOrdersHandler)
	mux.HandleFunc("DELETE /orders", app.clearOrdersHandler)
	mux.HandleFunc("GET /orders/history", app.historyHandler)
	mux.HandleFunc("POST /orders/{id}/complete", app.completeOrderHandler)
	mux.HandleFunc("GET /stats", app.statsHandler)

	mux.HandleFunc("GET /prefs", app.getPrefsHandler)
	mux.HandleFunc("PUT /prefs", app.putPrefsHandler)
	mux.HandleFunc("PUT /push-token", app.putPushTokenHandler)
	mux.HandleFunc("GET /notifications/bell", app.getBellHandler)

	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /debug/metrics", app.metricsHandler)
	mux.Handle("GET /debug/vars", expvar.Handler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)

	h := WithRequestID(WithUser(WithLogging(mux)))
	return otelhttp.NewHandler(h, "junk-mail-service")
}
