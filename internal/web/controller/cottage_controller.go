package controller

import (
	"net/http"
	"strconv"

	"github.com/NotOriginal333/hotel-lab4/internal/csrf"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/web/models"
	"github.com/NotOriginal333/hotel-lab4/internal/web/response"
	"github.com/NotOriginal333/hotel-lab4/internal/web/service"

	"github.com/gin-gonic/gin"
)

// CottageController serves the cottage list and the cottage detail screen.
type CottageController struct {
	cottageService service.CottageService
}

// NewCottageController creates a new CottageController.
func NewCottageController(cottageService service.CottageService) *CottageController {
	return &CottageController{
		cottageService: cottageService,
	}
}

// List shows the first page, dropping whatever was loaded before.
func (cc *CottageController) List(c *gin.Context) {
	sess := session.FromContext(c)
	list, err := cc.cottageService.FirstPage(c.Request.Context(), sess)
	cc.renderList(c, sess, list, err)
}

// More appends the next page to the list kept in the session.
func (cc *CottageController) More(c *gin.Context) {
	sess := session.FromContext(c)
	list, err := cc.cottageService.LoadMore(c.Request.Context(), sess)
	cc.renderList(c, sess, list, err)
}

func (cc *CottageController) renderList(c *gin.Context, sess *session.Session, list *models.CottageList, err error) {
	page := models.CottageListPage{
		Layout:   layout("Cottages", sess),
		Cottages: list.Cottages,
		HasMore:  list.HasMore,
	}
	code := http.StatusOK
	if err != nil {
		code = statusFor(err)
		page.Error = models.MsgCottagesFailed
	}
	c.HTML(code, "cottages.html", page)
}

// Detail opens the cottage with a fresh availability state.
func (cc *CottageController) Detail(c *gin.Context) {
	id, ok := cottageID(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)

	state, err := cc.cottageService.Open(c.Request.Context(), sess, id)
	if err != nil {
		response.Error(c, statusFor(err), models.MsgCottageFailed)
		return
	}
	cc.renderDetail(c, sess, state)
}

func (cc *CottageController) CheckAvailability(c *gin.Context) {
	id, ok := cottageID(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)

	var form models.DatesForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, models.MsgInvalidDates)
		return
	}

	state, err := cc.cottageService.CheckAvailability(c.Request.Context(), sess, id, form, csrf.FromRequest(c.Request))
	if err != nil {
		response.Error(c, statusFor(err), models.MsgCottageFailed)
		return
	}
	cc.renderDetail(c, sess, state)
}

func (cc *CottageController) Book(c *gin.Context) {
	id, ok := cottageID(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)

	state, err := cc.cottageService.Book(c.Request.Context(), sess, id, csrf.FromRequest(c.Request))
	if err != nil {
		response.Error(c, statusFor(err), models.MsgCottageFailed)
		return
	}
	cc.renderDetail(c, sess, state)
}

func (cc *CottageController) renderDetail(c *gin.Context, sess *session.Session, state *models.BookingState) {
	c.HTML(http.StatusOK, "cottage.html", models.CottageDetailPage{
		Layout:   layout(state.Cottage.Name, sess),
		Cottage:  &state.Cottage,
		Booking:  state,
		CanBook:  state.CanBook(),
		CheckIn:  state.CheckIn,
		CheckOut: state.CheckOut,
	})
}

func cottageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusNotFound, models.MsgCottageFailed)
		return 0, false
	}
	return id, true
}
