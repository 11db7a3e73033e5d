// Package web serves the scene inspector: JSON views of the resource
// registries and the loaded scene document, plus a websocket stream of
// loading/rendering status events.
package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mpoletaev/glscene/scene"
	"github.com/mpoletaev/glscene/scenefile"
)

// NewRouter builds the inspector routes over a manager and the scene
// document it was prepared from.
func NewRouter(m *scene.Manager, doc *scenefile.Scene) *mux.Router {
	i := &inspector{manager: m, doc: doc}

	r := mux.NewRouter()
	r.HandleFunc("/json/textures", i.HandlerTextures)
	r.HandleFunc("/json/materials", i.HandlerMaterials)
	r.HandleFunc("/json/lights", i.HandlerLights)
	r.HandleFunc("/json/scene", i.HandlerScene)
	r.HandleFunc("/ws/status", HandlerStatusWS)
	return r
}

// StartServer blocks serving the inspector on addr.
func StartServer(addr string, m *scene.Manager, doc *scenefile.Scene) error {
	r := NewRouter(m, doc)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting inspector %v", addr)

	return http.ListenAndServe(addr, h)
}
