package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
)

// Entry point groups and settings keys used by the bundled demo application.
// The "demo.ui" group is served by this process; the "demo.api" group belongs
// to a separate deployment and is mirrored for URL generation only.
const (
	demoUIGroup  = "demo.ui"
	demoAPIGroup = "demo.api"

	uiBaseURLKey  = "ui_base_url"
	apiBaseURLKey = "api_base_url"
)

var registerDemoOnce sync.Once

// registerDemoBlueprints populates the default registry with the demo
// blueprint groups. Safe to call more than once.
func registerDemoBlueprints() {
	registerDemoOnce.Do(func() {
		blueprints.Register(demoUIGroup, blueprints.Blueprint{
			Name:     "records",
			Register: registerRecordsUI,
		})

		blueprints.Register(demoAPIGroup,
			blueprints.Blueprint{
				Name:     "records-api",
				Register: registerRecordsAPI,
			},
			blueprints.Blueprint{
				Name:     "search-api",
				Register: registerSearchAPI,
			},
		)
	})
}

// registerRecordsUI mounts the record landing pages. The detail page links to
// the record's REST representation, which lives in the mirrored application.
func registerRecordsUI(m *blueprints.Mount) error {
	a := m.App()

	detail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := routing.ParamsFromContext(r.Context())
		id := params["id"]

		apiURL, err := a.URLFor("api.records.detail", map[string]string{"id": id})
		if err != nil {
			http.Error(w, "cannot resolve record API URL", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "{\"id\":%q,\"links\":{\"self_api\":%q}}\n", id, apiURL)
	})
	if err := m.Handle(http.MethodGet, "/:id", "records.detail", detail); err != nil {
		return err
	}

	listing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		searchURL, err := a.URLFor("api.search", map[string]string{"q": r.URL.Query().Get("q")})
		if err != nil {
			http.Error(w, "cannot resolve search API URL", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "{\"links\":{\"search_api\":%q}}\n", searchURL)
	})
	return m.Handle(http.MethodGet, "/", "records.listing", listing)
}

// registerRecordsAPI declares the REST record routes of the other deployment.
// Handlers are never attached here: within this process the routes exist only
// so URLs pointing at them can be generated.
func registerRecordsAPI(m *blueprints.Mount) error {
	if err := m.Handle(http.MethodGet, "/:id", "api.records.detail", nil); err != nil {
		return err
	}
	return m.Handle(http.MethodGet, "/", "api.records.listing", nil)
}

// registerSearchAPI declares the search route of the other deployment.
func registerSearchAPI(m *blueprints.Mount) error {
	return m.Handle(http.MethodGet, "/search", "api.search", nil)
}
