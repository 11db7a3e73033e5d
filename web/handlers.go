package web

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mpoletaev/glscene/scene"
	"github.com/mpoletaev/glscene/scenefile"
	"github.com/mpoletaev/glscene/status"
	"github.com/mpoletaev/glscene/webutils"
)

type inspector struct {
	manager *scene.Manager
	doc     *scenefile.Scene
}

type textureView struct {
	Slot   int
	Tag    string
	Handle scene.TextureHandle
}

func (i *inspector) HandlerTextures(w http.ResponseWriter, r *http.Request) {
	slots := i.manager.Textures().Slots()
	out := make([]textureView, len(slots))
	for n, s := range slots {
		out[n] = textureView{Slot: n, Tag: s.Tag, Handle: s.Handle}
	}
	webutils.WriteJson(w, out)
}

func (i *inspector) HandlerMaterials(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, i.manager.Materials().Materials())
}

func (i *inspector) HandlerLights(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, i.manager.Lights().Lights())
}

func (i *inspector) HandlerScene(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, i.doc)
}

var statusUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func HandlerStatusWS(w http.ResponseWriter, r *http.Request) {
	conn, err := statusUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	status.NewClient(conn)
}
