package controllers

import (
	"net/http"

	"github.com/tcgperu/storefront-backend/api/responses"
	"github.com/tcgperu/storefront-backend/internal/catalog"
	"github.com/tcgperu/storefront-backend/pkg/config"
	pkgerrors "github.com/tcgperu/storefront-backend/pkg/errors"
	"github.com/tcgperu/storefront-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, index *catalog.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		if index == nil || index.Len() == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "catalog not loaded"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"status":        "ready",
			"catalog_items": index.Len(),
		})
	}
}
