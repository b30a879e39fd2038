package projects

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.ProjectsPattern, h.handleList)
	mux.HandleFunc(routepath.ProjectNewPattern, h.handleNewForm)
	mux.HandleFunc(routepath.ProjectCreatePattern, h.handleCreate)
	mux.HandleFunc(routepath.ProjectPattern, h.handleDetail)
	mux.HandleFunc(routepath.DictionaryPattern, h.handleDictionary)
	mux.HandleFunc(routepath.DictionaryAddPattern, h.handleDictionaryAdd)
	mux.HandleFunc(routepath.DictionaryDropPattern, h.handleDictionaryDrop)
}
