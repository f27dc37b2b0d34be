package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/httputil"
	"github.com/Mura0908/finsight-app-New/internal/importer"
	"github.com/Mura0908/finsight-app-New/internal/ledger"
	"github.com/gin-gonic/gin"
)

type ImportQuery struct {
	Confirm string `form:"confirm"` // Must be "yes-replace-everything"
}

func (co Controller) RegisterPersistenceRoutes(v1 *gin.RouterGroup) {
	v1.OPTIONS("/export", OptionsExport)
	v1.GET("/export", co.Export)
	v1.OPTIONS("/import", OptionsImport)
	v1.POST("/import", co.Import)
	v1.OPTIONS("/import/ofx", OptionsImport)
	v1.POST("/import/ofx", co.ImportOFX)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, httputil.ErrNoFilePost
	}

	if err != nil {
		return nil, err
	}

	name := strings.ToLower(formFile.Filename)
	supported := false
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			supported = true
			break
		}
	}

	if !supported {
		return nil, fmt.Errorf("%w: %s", httputil.ErrWrongFileSuffix, strings.Join(suffixes, ", "))
	}

	return formFile.Open()
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Persistence
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Persistence
// @Success		204
// @Router			/v1/import [options]
// @Router			/v1/import/ofx [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export
// @Description	Exports all data. The response can be sent to the import endpoint as is.
// @Tags			Persistence
// @Produce		json
// @Success		200	{object}	ledger.Snapshot
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	snapshot, err := co.Ledger.Export(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	filename := fmt.Sprintf("finsight-%s.json", co.Ledger.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, snapshot)
}

// @Summary		Import
// @Description	Replaces all data with the data in the request body. The repayment password is kept.
// @Tags			Persistence
// @Accept			json
// @Produce		json
// @Success		201			{object}	Response[ledger.ImportSummary]
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			confirm		query		string			true	"Confirmation to replace all data. Must have the value 'yes-replace-everything'"
// @Param			snapshot	body		ledger.Snapshot	true	"Data as returned by the export"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	var query ImportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil || query.Confirm != "yes-replace-everything" {
		abort(c, httputil.ErrImportConfirmation)
		return
	}

	var snapshot ledger.Snapshot
	err = httputil.BindData(c, &snapshot)
	if err != nil {
		abort(c, err)
		return
	}

	summary, err := co.Ledger.Import(c.Request.Context(), snapshot)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[ledger.ImportSummary]{Data: &summary})
}

// @Summary		Preview bank statement
// @Description	Returns the incomes and expenses an OFX bank statement contains. Match rules set their categories.
// @Description	Entries that have been imported before list the IDs of the existing entries.
// @Tags			Persistence
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ListResponse[importer.Preview]
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/ofx [post]
func (co Controller) ImportOFX(c *gin.Context) {
	f, err := getUploadedFile(c, ".ofx", ".qfx")
	if err != nil {
		abort(c, err)
		return
	}
	defer f.Close()

	previews, err := co.Ledger.PreviewOFX(c.Request.Context(), f)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(c, previews, int64(len(previews)), 0, len(previews), identity[importer.Preview]))
}
