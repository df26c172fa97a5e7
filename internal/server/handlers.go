package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"rechub/internal/catalog"
	"rechub/internal/logging"
	"rechub/internal/query"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cat, loaded := s.library.Snapshot()
	data := indexData{Loaded: loaded}
	if loaded {
		data.Count = cat.Len()
		data.Moods = cat.Moods()
	}
	s.renderPage(w, indexTemplate, data)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "query must not be blank", http.StatusBadRequest)
		return
	}

	cat, loaded := s.library.Snapshot()
	if !loaded {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	results := query.Search(cat, query.Params{
		Query: q,
		Type:  query.ParseType(r.URL.Query().Get("type")),
		Sort:  query.ParseSort(r.URL.Query().Get("sort")),
	})

	// Posters resolve one at a time; a result page performs at most one
	// external lookup in flight.
	resolved := s.resolver.ResolveAll(r.Context(), results)

	data := resultsData{Query: q, Count: len(resolved)}
	for _, entry := range resolved {
		view := catalog.Display(entry.Item)
		data.Cards = append(data.Cards, card{
			Poster:      template.URL(entry.URL),
			Title:       view.Title,
			Type:        view.Type,
			Rating:      view.Rating,
			Description: view.Description,
		})
	}
	s.renderPage(w, resultsTemplate, data)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	file, _, err := r.FormFile("catalog")
	if err != nil {
		http.Error(w, "catalog file missing from upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	cat, err := catalog.Decode(file)
	if err != nil {
		http.Error(w, "uploaded catalog is not valid JSON", http.StatusBadRequest)
		return
	}

	s.library.Replace(cat)
	s.logger.Info("catalog uploaded", logging.Int("items", cat.Len()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type moodsResponse struct {
	Moods []string `json:"moods"`
}

func (s *Server) handleAPIMoods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	cat, loaded := s.library.Snapshot()
	if !loaded {
		s.writeJSON(w, http.StatusOK, moodsResponse{Moods: []string{}})
		return
	}
	s.writeJSON(w, http.StatusOK, moodsResponse{Moods: cat.Moods()})
}

type searchResult struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Rating      string   `json:"rating"`
	Description string   `json:"description"`
	Moods       []string `json:"moods"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []searchResult `json:"results"`
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "query must not be blank")
		return
	}

	cat, _ := s.library.Snapshot()
	results := query.Search(cat, query.Params{
		Query: q,
		Type:  query.ParseType(r.URL.Query().Get("type")),
		Sort:  query.ParseSort(r.URL.Query().Get("sort")),
	})

	payload := searchResponse{Query: q, Count: len(results), Results: make([]searchResult, 0, len(results))}
	for _, item := range results {
		view := catalog.Display(item)
		payload.Results = append(payload.Results, searchResult{
			Title:       view.Title,
			Type:        view.Type,
			Rating:      view.Rating,
			Description: view.Description,
			Moods:       view.Moods,
		})
	}
	s.writeJSON(w, http.StatusOK, payload)
}

type posterResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (s *Server) handleAPIPoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		s.writeError(w, http.StatusBadRequest, "title must not be blank")
		return
	}
	mediaType := catalog.MediaType(r.URL.Query().Get("type"))
	if mediaType == "" {
		mediaType = catalog.TypeMovie
	}

	url, err := s.resolver.Resolve(r.Context(), title, mediaType)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, posterResponse{Title: title, URL: url})
}

func (s *Server) renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", logging.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
