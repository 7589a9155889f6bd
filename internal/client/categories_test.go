package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/pkg/catalog"
)

// categoryFixture is an in-memory rendition of the categories endpoint,
// close enough to exercise the full CRUD surface of a resource client.
type categoryFixture struct {
	t  *testing.T
	mu sync.Mutex

	categories map[string]*catalog.Category
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()

	return &categoryFixture{t: t, categories: make(map[string]*catalog.Category)}
}

func (f *categoryFixture) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/categories", f.create)
	mux.HandleFunc("GET /v1/categories", f.list)
	mux.HandleFunc("GET /v1/categories/{id}", f.get)
	mux.HandleFunc("PATCH /v1/categories/{id}", f.update)
	mux.HandleFunc("DELETE /v1/categories/{id}", f.delete)

	return mux
}

func (f *categoryFixture) create(w http.ResponseWriter, r *http.Request) {
	var request catalog.CategoryCreateRequest

	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&request))

	if request.Name == "" {
		respondError(f.t, w, http.StatusUnprocessableEntity, "validation failed", map[string]string{"name": "is required"})

		return
	}

	now := time.Now().UTC()
	category := &catalog.Category{
		Resource:    catalog.Resource{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Name:        request.Name,
		Description: request.Description,
	}

	f.mu.Lock()
	f.categories[category.ID] = category
	f.mu.Unlock()

	respondOne(f.t, w, category)
}

func (f *categoryFixture) list(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	f.mu.Lock()

	matches := make([]catalog.Category, 0, len(f.categories))

	for _, category := range f.categories {
		if search == "" || strings.Contains(strings.ToLower(category.Name), strings.ToLower(search)) {
			matches = append(matches, *category)
		}
	}

	f.mu.Unlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })

	respondList(f.t, w, matches, catalog.Meta{
		Page:       catalog.DefaultPage,
		PageSize:   catalog.DefaultPageSize,
		Total:      len(matches),
		TotalPages: catalog.TotalPages(len(matches), catalog.DefaultPageSize),
	})
}

func (f *categoryFixture) get(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	category, ok := f.categories[r.PathValue("id")]
	f.mu.Unlock()

	if !ok {
		respondError(f.t, w, http.StatusNotFound, "category not found", nil)

		return
	}

	respondOne(f.t, w, category)
}

func (f *categoryFixture) update(w http.ResponseWriter, r *http.Request) {
	var request catalog.CategoryUpdateRequest

	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&request))

	f.mu.Lock()
	defer f.mu.Unlock()

	category, ok := f.categories[r.PathValue("id")]
	if !ok {
		respondError(f.t, w, http.StatusNotFound, "category not found", nil)

		return
	}

	if request.Name != nil {
		category.Name = *request.Name
	}

	if request.Description != nil {
		category.Description = *request.Description
	}

	category.UpdatedAt = time.Now().UTC()

	respondOne(f.t, w, category)
}

func (f *categoryFixture) delete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := f.categories[id]; !ok {
		respondError(f.t, w, http.StatusNotFound, "category not found", nil)

		return
	}

	delete(f.categories, id)
	respondOne(f.t, w, map[string]string{"id": id})
}

func TestCategoriesClient_CRUD(t *testing.T) {
	t.Parallel()

	fixture := newCategoryFixture(t)
	apiClient := newTestClient(t, fixture.handler())
	categories := apiClient.Categories()
	ctx := context.Background()

	created, err := categories.Create(ctx, &catalog.CategoryCreateRequest{
		Name:        "Linens",
		Description: "Bedding and towels",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Linens", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := categories.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Bedding and towels", fetched.Description)

	newName := "Linens & Towels"

	updated, err := categories.Update(ctx, created.ID, &catalog.CategoryUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Linens & Towels", updated.Name)
	assert.Equal(t, "Bedding and towels", updated.Description)

	listed, err := categories.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, 1, listed.Meta.Total)

	require.NoError(t, categories.Delete(ctx, created.ID))

	_, err = categories.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, catalog.IsNotFound(err))
}

func TestCategoriesClient_ListSearch(t *testing.T) {
	t.Parallel()

	fixture := newCategoryFixture(t)
	apiClient := newTestClient(t, fixture.handler())
	categories := apiClient.Categories()
	ctx := context.Background()

	for _, name := range []string{"Linens", "Kitchen", "Electronics"} {
		_, err := categories.Create(ctx, &catalog.CategoryCreateRequest{Name: name})
		require.NoError(t, err)
	}

	listed, err := categories.List(ctx, catalog.NewQuery().WithSearch("lin"))
	require.NoError(t, err)
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "Linens", listed.Data[0].Name)
}

func TestCategoriesClient_CreateValidationError(t *testing.T) {
	t.Parallel()

	fixture := newCategoryFixture(t)
	apiClient := newTestClient(t, fixture.handler())

	_, err := apiClient.Categories().Create(context.Background(), &catalog.CategoryCreateRequest{})
	require.Error(t, err)
	assert.True(t, catalog.IsValidation(err))

	var apiErr *catalog.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "is required", apiErr.Details["name"])
}
