package chi

import (
	"net/http"

	"github.com/kailas-cloud/facetlist/internal/domain/execution"
)

// ExecutionMemoMiddleware gives every request a fresh list execution memo, so
// each item's list runs at most once per request.
func ExecutionMemoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := execution.NewContextWithMemo(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
