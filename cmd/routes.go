package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Session
	mux.Post("/session", standardMiddleware.ThenFunc(app.userHandler.SignIn))

	// Arts
	mux.Get("/arts", authMiddleware.ThenFunc(app.artHandler.GetArts))
	mux.Post("/arts", standardMiddleware.ThenFunc(app.artHandler.CreateArt))
	mux.Get("/art/:id", standardMiddleware.ThenFunc(app.artHandler.GetArtByID))
	mux.Add("PATCH", "/art/:id", standardMiddleware.ThenFunc(app.artHandler.UpdateArt))
	mux.Del("/art/:id", standardMiddleware.ThenFunc(app.artHandler.DeleteArt))
	mux.Post("/art/:id/image", standardMiddleware.ThenFunc(app.artHandler.UploadArtImage))

	// Categories
	mux.Get("/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/categories/:subcategory_name", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByName))
	mux.Get("/category/:subcategory_name", standardMiddleware.ThenFunc(app.artHandler.GetArtsBySubcategory))

	// Users
	mux.Post("/users", standardMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get("/users", standardMiddleware.ThenFunc(app.userHandler.GetUsers))

	mux.Get("/", standardMiddleware.ThenFunc(app.home))

	return mux
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	w.Write([]byte(`{"status":"JohuArt backend server running"}`))
}
