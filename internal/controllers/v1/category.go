package v1

import (
	"net/http"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}
	{
		r.OPTIONS("/:type/:id", co.OptionsCategoryDetail)
		r.GET("/:type/:id", co.GetCategory)
		r.PATCH("/:type/:id", co.UpdateCategory)
		r.DELETE("/:type/:id", co.DeleteCategory)
	}
}

// bindCategory binds the category type and ID from the URI.
func bindCategory(c *gin.Context) (URICategory, bool) {
	var uri URICategory
	err := c.ShouldBindUri(&uri)
	if err == nil && !uri.Type.Valid() {
		err = models.ErrCategoryTypeInvalid
	}

	if err != nil {
		abort(c, err)
		return URICategory{}, false
	}

	return uri, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			type	path	string	true	"Type of the category"
// @Param			id		path	string	true	"ID of the category"
// @Router			/v1/categories/{type}/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	uri, ok := bindCategory(c)
	if !ok {
		return
	}

	_, err := co.Ledger.Category(c.Request.Context(), uri.Type, uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create categories
// @Description	Creates new categories. The ID of a category is derived from its name.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CreateResponse[Category]
// @Failure		400			{object}	CreateResponse[Category]
// @Failure		500			{object}	CreateResponse[Category]
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	var categories []CategoryEditable

	err := httputil.BindData(c, &categories)
	if err != nil {
		abort(c, err)
		return
	}

	status := http.StatusCreated
	r := CreateResponse[Category]{}

	for _, create := range categories {
		category, err := co.Ledger.CreateCategory(c.Request.Context(), create.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newCategory(c, category)
		r.Data = append(r.Data, Response[Category]{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get categories
// @Description	Returns the categories ordered by type and name. Income categories come first.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	ListResponse[Category]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			type	query		string	false	"Filter by type, 'income' or 'expense'"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	categories, err := co.Ledger.Categories(c.Request.Context(), filter.Type)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, categories, int64(len(categories)), 0, len(categories), newCategory))
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	Response[Category]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			type	path		string	true	"Type of the category"
// @Param			id		path		string	true	"ID of the category"
// @Router			/v1/categories/{type}/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	uri, ok := bindCategory(c)
	if !ok {
		return
	}

	category, err := co.Ledger.Category(c.Request.Context(), uri.Type, uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, Response[Category]{Data: &apiResource})
}

// @Summary		Update category
// @Description	Updates name, description and icon of a category. The ID follows the new name unless another category
// @Description	of the same type already uses it. Incomes, expenses, budgets and match rules move along with the ID.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[Category]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		path		string				true	"Type of the category"
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{type}/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	uri, ok := bindCategory(c)
	if !ok {
		return
	}

	current, err := co.Ledger.Category(c.Request.Context(), uri.Type, uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	data := CategoryEditable{
		Type:        current.Type,
		Name:        current.Name,
		Description: current.Description,
		Icon:        current.Icon,
	}

	err = httputil.BindPatch(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	category, err := co.Ledger.UpdateCategory(c.Request.Context(), uri.Type, uri.ID, data.model())
	if err != nil {
		abort(c, err)
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, Response[Category]{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category. "other" cannot be deleted. Categories in use are only deleted with reassign=true,
// @Description	their incomes, expenses and budgets are then moved to "other".
// @Tags			Categories
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		409			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		path		string	true	"Type of the category"
// @Param			id			path		string	true	"ID of the category"
// @Param			reassign	query		bool	false	"Move entries using the category to 'other'"
// @Router			/v1/categories/{type}/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	uri, ok := bindCategory(c)
	if !ok {
		return
	}

	var query CategoryDeleteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abort(c, err)
		return
	}

	err := co.Ledger.DeleteCategory(c.Request.Context(), uri.Type, uri.ID, query.Reassign)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
