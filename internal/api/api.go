// Package api serves generated levels over HTTP as JSON and plain text.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dungeongen/internal/dungeon"
	"dungeongen/internal/gamemap"
	"dungeongen/internal/mapdump"
	"dungeongen/internal/special"
)

// NewRouter configures all routes. levels may be shared with other
// front ends; nil gets a private cache.
func NewRouter(levels *dungeon.Cache) http.Handler {
	if levels == nil {
		levels = dungeon.NewCache(256)
	}
	h := &LevelHandler{levels: levels}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/special", h.ListSpecial)
		r.Get("/branches/{dungeon}", h.GetBranch)
		r.Get("/levels/{dungeon}/{level}", h.GetLevel)
		r.Get("/levels/{dungeon}/{level}/map", h.GetMap)
	})
	return r
}

// LevelHandler handles level endpoints.
type LevelHandler struct {
	levels *dungeon.Cache
}

// SpecialInfo describes one template for GET /api/special.
type SpecialInfo struct {
	Name  string          `json:"name"`
	Title string          `json:"title"`
	At    *gamemap.DLevel `json:"at,omitempty"`
}

// ListSpecial handles GET /api/special - lists every template.
func (h *LevelHandler) ListSpecial(w http.ResponseWriter, r *http.Request) {
	ids := special.IDs()
	out := make([]SpecialInfo, 0, len(ids))
	for _, id := range ids {
		info := SpecialInfo{Name: id.String(), Title: id.Title()}
		if at, ok := id.Location(); ok {
			info.At = &at
		}
		out = append(out, info)
	}
	respondJSON(w, http.StatusOK, out)
}

// GetLevel handles GET /api/levels/{dungeon}/{level} - returns the level
// as JSON.
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	lvl, ok := h.build(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, mapdump.NewView(lvl))
}

// GetMap handles GET /api/levels/{dungeon}/{level}/map - returns the
// level as an ASCII dump.
func (h *LevelHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	lvl, ok := h.build(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := mapdump.Write(w, lvl); err != nil {
		log.Printf("Error writing map: %v", err)
	}
}

// BranchLevel summarises one level of GET /api/branches/{dungeon}.
type BranchLevel struct {
	DLevel  gamemap.DLevel `json:"dlevel"`
	Special string         `json:"special,omitempty"`
	Rooms   int            `json:"rooms"`
	Traps   int            `json:"traps"`
	Flags   []string       `json:"flags,omitempty"`
}

// GetBranch handles GET /api/branches/{dungeon} - builds every level of a
// dungeon for one seed and summarises them.
func (h *LevelHandler) GetBranch(w http.ResponseWriter, r *http.Request) {
	dn, err := strconv.Atoi(chi.URLParam(r, "dungeon"))
	if err != nil || gamemap.LevelCount(dn) == 0 {
		respondError(w, http.StatusBadRequest, "invalid dungeon")
		return
	}
	seed, role, err := gameParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	levels, err := dungeon.BuildBranch(r.Context(), seed, dn, 1, gamemap.LevelCount(dn), dungeon.BranchOptions{Role: role})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]BranchLevel, len(levels))
	for i, lvl := range levels {
		v := mapdump.NewView(lvl)
		out[i] = BranchLevel{DLevel: lvl.DLevel, Special: lvl.Special, Rooms: len(v.Rooms), Traps: len(v.Traps), Flags: v.Flags}
	}
	respondJSON(w, http.StatusOK, out)
}

// build parses the level request and builds it, writing the error
// response itself on failure.
func (h *LevelHandler) build(w http.ResponseWriter, r *http.Request) (*gamemap.Level, bool) {
	at, err := location(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	seed, role, err := gameParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	p := dungeon.Params{Seed: dungeon.LevelSeed(seed, at), DLevel: at, Role: role}
	if name := r.URL.Query().Get("special"); name != "" {
		id, err := special.ParseID(name)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		p.Special = &id
	}

	lvl, err := h.levels.Build(p)
	if err != nil {
		status := http.StatusInternalServerError
		var te *special.TemplateError
		if errors.As(err, &te) || errors.Is(err, dungeon.ErrBadLocation) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, err.Error())
		return nil, false
	}
	return lvl, true
}

func location(r *http.Request) (gamemap.DLevel, error) {
	dn, err := strconv.Atoi(chi.URLParam(r, "dungeon"))
	if err != nil {
		return gamemap.DLevel{}, errors.New("invalid dungeon")
	}
	lv, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		return gamemap.DLevel{}, errors.New("invalid level")
	}
	at := gamemap.DLevel{Dungeon: dn, Level: lv}
	if !at.Valid() {
		return at, fmt.Errorf("no level %d in dungeon %d", lv, dn)
	}
	return at, nil
}

// gameParams reads the seed and role query parameters. Both are optional.
func gameParams(r *http.Request) (uint64, special.Role, error) {
	q := r.URL.Query()
	var seed uint64
	if s := q.Get("seed"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, errors.New("invalid seed")
		}
		seed = v
	}
	var role special.Role
	if s := q.Get("role"); s != "" {
		v, err := special.ParseRole(s)
		if err != nil {
			return 0, 0, err
		}
		role = v
	}
	return seed, role, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
