package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"skolmaten/internal/importer"
	"skolmaten/internal/model"
	"skolmaten/internal/policy"
	"skolmaten/internal/service"
)

// maxImportBody bounds an uploaded import document.
const maxImportBody = 8 << 20

// MenuLoader fetches an import document from a bucket location.
type MenuLoader interface {
	Load(ctx context.Context, location string) ([]model.MenuEntry, error)
}

// MenuHandler serves the weekly menu.
type MenuHandler struct {
	menu   service.MenuService
	guard  *policy.Guard
	loader MenuLoader
	now    func() time.Time
}

// NewMenuHandler creates a handler layer. loader may be nil, in which case
// imports by location are refused.
func NewMenuHandler(menu service.MenuService, guard *policy.Guard, loader MenuLoader) *MenuHandler {
	return &MenuHandler{menu: menu, guard: guard, loader: loader, now: time.Now}
}

// MenuEntryRequest sets the text of one day.
type MenuEntryRequest struct {
	Text string `json:"text"`
}

// DayResponse is the text of one day.
type DayResponse struct {
	Year    int    `json:"year"`
	Week    int    `json:"week"`
	Weekday int    `json:"day"`
	Text    string `json:"text"`
}

// ImportResponse reports how many cells an import wrote.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// CurrentWeek godoc
// @Summary The menu of the current ISO week
// @Tags menu
// @Produce json
// @Success 200 {object} model.WeekView
// @Router /menu/current [get]
func (h *MenuHandler) CurrentWeek(c echo.Context) error {
	year, week := h.menu.CurrentWeek(h.now())
	view, err := h.menu.GetWeek(c.Request().Context(), year, week)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// Week godoc
// @Summary The menu of one week
// @Description Week numbers outside the year roll over into the neighbouring year.
// @Tags menu
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Success 200 {object} model.WeekView
// @Failure 400 {object} errors.ErrorResponse
// @Router /menu/weeks/{year}/{week} [get]
func (h *MenuHandler) Week(c echo.Context) error {
	year, err := intParam(c, "year")
	if err != nil {
		return err
	}
	week, err := intParam(c, "week")
	if err != nil {
		return err
	}
	year, week = h.menu.NormalizeWeek(year, week)
	view, err := h.menu.GetWeek(c.Request().Context(), year, week)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// Year godoc
// @Summary Every week of a year
// @Tags menu
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} model.WeekView
// @Failure 400 {object} errors.ErrorResponse
// @Router /menu/years/{year} [get]
func (h *MenuHandler) Year(c echo.Context) error {
	year, err := intParam(c, "year")
	if err != nil {
		return err
	}
	weeks, err := h.menu.GetYear(c.Request().Context(), year)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, weeks)
}

// Day godoc
// @Summary The text of one day
// @Tags menu
// @Produce json
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Param weekday path int true "1 = Monday .. 5 = Friday"
// @Success 200 {object} DayResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /menu/{year}/{week}/{weekday} [get]
func (h *MenuHandler) Day(c echo.Context) error {
	year, week, weekday, err := dayParams(c)
	if err != nil {
		return err
	}
	text, err := h.menu.GetEntry(c.Request().Context(), year, week, weekday)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DayResponse{Year: year, Week: week, Weekday: weekday, Text: text})
}

// SetEntry godoc
// @Summary Set the text of one day
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Param weekday path int true "1 = Monday .. 5 = Friday"
// @Param request body MenuEntryRequest true "Menu text"
// @Success 200 {object} DayResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{year}/{week}/{weekday} [put]
func (h *MenuHandler) SetEntry(c echo.Context) error {
	year, week, weekday, err := dayParams(c)
	if err != nil {
		return err
	}
	var req MenuEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.guard.SetMenuEntry(c.Request().Context(), CurrentIdentity(c), year, week, weekday, req.Text); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DayResponse{Year: year, Week: week, Weekday: weekday, Text: req.Text})
}

// ClearEntry godoc
// @Summary Blank one day
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param week path int true "ISO week"
// @Param weekday path int true "1 = Monday .. 5 = Friday"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/{year}/{week}/{weekday} [delete]
func (h *MenuHandler) ClearEntry(c echo.Context) error {
	year, week, weekday, err := dayParams(c)
	if err != nil {
		return err
	}
	if err := h.guard.ClearMenuEntry(c.Request().Context(), CurrentIdentity(c), year, week, weekday); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "entry cleared"})
}

// Import godoc
// @Summary Bulk import menu entries
// @Description The document maps year, then week, then weekday name to the menu text.
// @Description It is read from the multipart field "json", from the location query
// @Description parameter (an s3://bucket/key object) or from the raw body.
// @Description Either every entry is written or none is.
// @Tags menu
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param location query string false "s3://bucket/key to fetch the document from"
// @Param json formData file false "Import document"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /menu/import [post]
func (h *MenuHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()
	actor := CurrentIdentity(c)
	if err := h.guard.AuthorizeImport(actor); err != nil {
		return domainError(err)
	}

	entries, err := h.readImport(c)
	if err != nil {
		return err
	}

	n, err := h.guard.ImportMenu(ctx, actor, entries)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ImportResponse{Imported: n})
}

func (h *MenuHandler) readImport(c echo.Context) ([]model.MenuEntry, error) {
	if location := c.QueryParam("location"); location != "" {
		if h.loader == nil {
			return nil, badRequest("import by location is disabled", "IMPORT_SOURCE_DISABLED")
		}
		if !bucketLocation(location) {
			return nil, badRequest("location must be an s3://bucket/key URL", "INVALID_PARAMETER")
		}
		entries, err := h.loader.Load(c.Request().Context(), location)
		if err != nil {
			return nil, importError(err)
		}
		return entries, nil
	}

	var body io.Reader = http.MaxBytesReader(c.Response(), c.Request().Body, maxImportBody)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("json")
		if err != nil {
			return nil, badRequest("missing import file field \"json\"", "MALFORMED_IMPORT")
		}
		if fh.Size > maxImportBody {
			return nil, badRequest("import document too large: "+strconv.FormatInt(fh.Size, 10)+" bytes", "MALFORMED_IMPORT")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, badRequest("cannot read uploaded file", "MALFORMED_IMPORT")
		}
		defer f.Close()
		body = f
	}

	entries, err := importer.Parse(body)
	if err != nil {
		return nil, importError(err)
	}
	return entries, nil
}

// bucketLocation accepts only object-store locations. File paths and http(s)
// URLs are left to the seed command, which runs with operator privileges.
func bucketLocation(location string) bool {
	return strings.HasPrefix(location, "s3://") && len(location) > len("s3://")
}

// importError keeps domain validation errors. Anything else, such as an
// unreachable source, is reported as a malformed import without its cause.
func importError(err error) error {
	httpErr := domainError(err)
	if he, ok := httpErr.(*echo.HTTPError); ok && he.Code >= http.StatusInternalServerError {
		return badRequest("import source unavailable", "MALFORMED_IMPORT")
	}
	return httpErr
}
