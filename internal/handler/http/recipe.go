package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/bugielektrik/sqlrepo/internal/domain/recipe"
	"github.com/bugielektrik/sqlrepo/internal/repository/postgres"
	"github.com/bugielektrik/sqlrepo/internal/sqlrepo"
	"github.com/bugielektrik/sqlrepo/pkg/server/response"
)

// RecipeHandler stays thin by design (spec §1 non-goal): it only translates
// query-string parameters into the filter DSL map that sqlrepo.Query
// consumes, it never builds SQL itself.
type RecipeHandler struct {
	repo *postgres.RecipeRepository
}

func NewRecipeHandler(repo *postgres.RecipeRepository) *RecipeHandler {
	return &RecipeHandler{repo: repo}
}

func (h *RecipeHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Get("/{id}", h.getByID)

	return r
}

// list translates every query-string parameter into a filter DSL entry,
// except the reserved control params (skip, limit, sort, include_discarded)
// which are handled separately. The resulting map is handed to
// sqlrepo.Repository.Query unchanged; FilterValidator rejects anything it
// does not recognize.
func (h *RecipeHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := map[string]any{}
	for key, values := range q {
		switch key {
		case "skip", "limit", "sort", "include_discarded":
			continue
		}
		if len(values) == 1 {
			filters[key] = values[0]
		} else {
			list := make([]any, len(values))
			for i, v := range values {
				list[i] = v
			}
			filters[key] = list
		}
	}
	if skip := q.Get("skip"); skip != "" {
		if n, err := strconv.Atoi(skip); err == nil {
			filters["skip"] = n
		}
	}
	if limit := q.Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filters["limit"] = n
		}
	}
	if sort := q.Get("sort"); sort != "" {
		filters["sort"] = sort
	}
	if includeDiscarded, _ := strconv.ParseBool(q.Get("include_discarded")); includeDiscarded {
		if _, alreadySet := filters["discarded"]; !alreadySet {
			filters["discarded"] = true
		}
	}

	res, err := h.repo.Query(r.Context(), sqlrepo.QueryOptions{Filters: filters})
	if err != nil {
		response.BadRequest(w, r, err, nil)
		return
	}

	response.OK(w, r, res)
}

func (h *RecipeHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.repo.Get(r.Context(), id)
	if err != nil {
		response.NotFound(w, r, err)
		return
	}

	response.OK(w, r, res)
}

type recipeRequest struct {
	recipe.Recipe
}

func (req *recipeRequest) Bind(r *http.Request) error {
	return nil
}

func (h *RecipeHandler) add(w http.ResponseWriter, r *http.Request) {
	req := recipeRequest{}
	if err := render.Bind(r, &req); err != nil {
		response.BadRequest(w, r, err, req)
		return
	}

	if err := h.repo.Add(r.Context(), req.Recipe); err != nil {
		response.InternalServerError(w, r, err, nil)
		return
	}

	response.OK(w, r, req.Recipe)
}
