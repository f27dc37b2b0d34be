package v1

import (
	"context"
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// editable is the API representation of the fields of a model M
// that clients can set.
type editable[M any] interface {
	model() M
}

type (
	loadFunc[M any]       func(context.Context, uuid.UUID) (M, error)
	submitFunc[M any]     func(context.Context, ledger.Mode, M) (M, error)
	removeFunc            func(context.Context, uuid.UUID) error
	presentFunc[M, R any] func(*gin.Context, M) R
)

// bindID binds the ID from the URI. It writes the error response and
// returns false if that is not possible.
func bindID(c *gin.Context) (uuid.UUID, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return uuid.Nil, false
	}

	return uri.ID.UUID, true
}

// optionsDetail responds to OPTIONS requests for a single resource.
func optionsDetail[M any](c *gin.Context, load loadFunc[M]) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	_, err := load(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// createResources creates all resources in the request body. Every
// resource is submitted on its own, errors are reported per resource.
func createResources[E editable[M], M, R any](c *gin.Context, submit submitFunc[M], present presentFunc[M, R]) {
	var editables []E

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		abort(c, err)
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[R]{}

	for _, e := range editables {
		m, err := submit(c.Request.Context(), ledger.Create(), e.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		resource := present(c, m)
		r.Data = append(r.Data, Response[R]{Data: &resource})
	}

	c.JSON(status, r)
}

// getResource responds with a single resource.
func getResource[M, R any](c *gin.Context, load loadFunc[M], present presentFunc[M, R]) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	m, err := load(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	resource := present(c, m)
	c.JSON(http.StatusOK, Response[R]{Data: &resource})
}

// updateResource applies a partial update to a resource. Fields that are
// not in the request body keep their current value.
func updateResource[E editable[M], M, R any](c *gin.Context, load loadFunc[M], toEditable func(M) E, submit submitFunc[M], present presentFunc[M, R]) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	current, err := load(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	data := toEditable(current)
	err = httputil.BindPatch(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	updated, err := submit(c.Request.Context(), ledger.Edit(id), data.model())
	if err != nil {
		abort(c, err)
		return
	}

	resource := present(c, updated)
	c.JSON(http.StatusOK, Response[R]{Data: &resource})
}

// deleteResource deletes a single resource.
func deleteResource(c *gin.Context, remove removeFunc) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	err := remove(c.Request.Context(), id)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// listResponse transforms the resources to their API representation.
func listResponse[M, R any](c *gin.Context, resources []M, total int64, offset uint, limit int, present presentFunc[M, R]) ListResponse[R] {
	data := make([]R, 0, len(resources))
	for _, m := range resources {
		data = append(data, present(c, m))
	}

	return ListResponse[R]{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	}
}

// identity presents resources that have no separate API representation.
func identity[M any](_ *gin.Context, m M) M {
	return m
}
