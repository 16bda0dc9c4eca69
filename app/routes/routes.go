package routes

import (
	"net/http"

	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup defines the application's routes and returns a router.
func Setup(authors *controllers.AuthorController, posts *controllers.PostController) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	// Author endpoints
	router.HandleFunc("/authors", authors.Index).Methods("GET")
	router.HandleFunc("/authors", authors.Create).Methods("POST")
	router.HandleFunc("/authors/{id}", authors.Update).Methods("PUT")
	router.HandleFunc("/authors/{id}", authors.Delete).Methods("DELETE")

	// Post endpoints
	router.HandleFunc("/posts", posts.Index).Methods("GET")
	router.HandleFunc("/posts", posts.Create).Methods("POST")
	router.HandleFunc("/posts/{id}", posts.Show).Methods("GET")
	router.HandleFunc("/posts/{id}", posts.Update).Methods("PUT")
	router.HandleFunc("/posts/{id}", posts.Delete).Methods("DELETE")

	// Catch-all for requests to non-existent endpoints
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return router
}

// SetupWithDB wires repositories, services, and controllers over the
// given Badger DB and returns the assembled router.
func SetupWithDB(db *badger.DB) *mux.Router {
	authorRepo := repositories.NewBadgerAuthorRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	authorService := services.NewAuthorService(authorRepo, postRepo)
	postService := services.NewPostService(postRepo, authorRepo)

	return Setup(
		controllers.NewAuthorController(authorService),
		controllers.NewPostController(postService),
	)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"message":"Not Found"}`))
}
