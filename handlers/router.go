// mediahub/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func SetupRouter(app App) http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(NewStructuredLogger(app.Logger()))
	mux.Use(middleware.Recoverer)
	mux.Use(RoleLevelMiddleware)

	// Static file server for locally stored uploads
	mux.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(app.UploadDir()))))

	mux.Route("/api", func(r chi.Router) {
		r.Post("/login", MakeHandler(app, HandleLogin))

		r.Get("/categories", MakeHandler(app, HandleListCategories))
		r.Post("/categories", MakeHandler(app, HandleCreateCategory))
		r.Put("/categories", MakeHandler(app, HandleUpdateCategory))
		r.Delete("/categories", MakeHandler(app, HandleDeleteCategory))

		r.Get("/folders", MakeHandler(app, HandleListFolders))
		r.Post("/folders", MakeHandler(app, HandleCreateFolder))
		r.Put("/folders", MakeHandler(app, HandleUpdateFolder))
		r.Delete("/folders", MakeHandler(app, HandleDeleteFolder))

		r.Get("/files", MakeHandler(app, HandleListFiles))
		r.Post("/files", MakeHandler(app, HandleCreateFile))
		r.Put("/files", MakeHandler(app, HandleUpdateFile))
		r.Delete("/files", MakeHandler(app, HandleDeleteFile))

		r.Get("/featured-media", MakeHandler(app, HandleListFeatured))
		r.Post("/featured-media", MakeHandler(app, HandleCreateFeatured))
		r.Put("/featured-media", MakeHandler(app, HandleUpdateFeatured))
		r.Delete("/featured-media", MakeHandler(app, HandleDeleteFeatured))

		r.Get("/slider-images", MakeHandler(app, HandleListSlider))
		r.Post("/slider-images", MakeHandler(app, HandleCreateSlider))
		r.Put("/slider-images", MakeHandler(app, HandleUpdateSlider))
		r.Delete("/slider-images", MakeHandler(app, HandleDeleteSlider))

		r.Get("/announcements", MakeHandler(app, HandleListAnnouncements))
		r.Post("/announcements", MakeHandler(app, HandleCreateAnnouncement))
		r.Delete("/announcements", MakeHandler(app, HandleDeleteAnnouncement))

		r.Get("/staff", MakeHandler(app, HandleListStaff))
		r.Post("/staff", MakeHandler(app, HandleCreateStaff))
		r.Delete("/staff", MakeHandler(app, HandleDeleteStaff))

		r.Get("/site-settings", MakeHandler(app, HandleGetSettings))
		r.Put("/site-settings", MakeHandler(app, HandleUpdateSettings))
	})

	// Browser clients live on other origins and send the role level header
	// on every request.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", LevelHeader},
	})
	return c.Handler(mux)
}
