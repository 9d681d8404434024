package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
	"github.com/NotOriginal333/hotel-lab4/internal/resortapi/mocks"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCottageService(t *testing.T, pageSize int) (CottageService, *mocks.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	svc, err := NewCottageService(api, pageSize)
	require.NoError(t, err)
	return svc, api
}

func page(ids ...int64) []resortapi.Cottage {
	out := make([]resortapi.Cottage, len(ids))
	for i, id := range ids {
		out[i] = resortapi.Cottage{ID: id}
	}
	return out
}

var pine = resortapi.Cottage{ID: 7, Name: "Pine", Category: "standard", PricePerNight: "120.00", TotalCapacity: 4}

var dates = models.DatesForm{CheckIn: "2026-11-01", CheckOut: "2026-11-04"}

func TestPagination_AppendsUntilShortPage(t *testing.T) {
	svc, api := newCottageService(t, 2)
	sess := session.New("sid")
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(page(1, 2), nil),
		api.EXPECT().ListCottages(gomock.Any(), 2, 2).Return(page(3, 4), nil),
		api.EXPECT().ListCottages(gomock.Any(), 3, 2).Return(page(5), nil),
	)

	list, err := svc.FirstPage(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, list.Cottages, 2)
	assert.True(t, list.HasMore)

	list, err = svc.LoadMore(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, list.Cottages, 4)
	assert.True(t, list.HasMore)

	list, err = svc.LoadMore(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, list.Cottages, 5)
	assert.False(t, list.HasMore, "show more disappears after a short page")
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(list.Cottages))
	assert.Same(t, list, sess.Cottages())
}

func TestPagination_FirstPageResets(t *testing.T) {
	svc, api := newCottageService(t, 2)
	sess := session.New("sid")
	ctx := context.Background()

	api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(page(1, 2), nil).Times(2)

	_, err := svc.FirstPage(ctx, sess)
	require.NoError(t, err)
	list, err := svc.FirstPage(ctx, sess)
	require.NoError(t, err)

	assert.Len(t, list.Cottages, 2)
	assert.Equal(t, 1, list.Page)
}

func TestPagination_FailureKeepsList(t *testing.T) {
	svc, api := newCottageService(t, 2)
	sess := session.New("sid")
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(page(1, 2), nil),
		api.EXPECT().ListCottages(gomock.Any(), 2, 2).Return(nil, resortapi.ErrUnexpectedFormat),
		api.EXPECT().ListCottages(gomock.Any(), 2, 2).Return(page(3), nil),
	)

	_, err := svc.FirstPage(ctx, sess)
	require.NoError(t, err)

	list, err := svc.LoadMore(ctx, sess)
	assert.ErrorIs(t, err, resortapi.ErrUnexpectedFormat)
	assert.Len(t, list.Cottages, 2)
	assert.Equal(t, 1, list.Page, "the page counter does not advance on failure")

	list, err = svc.LoadMore(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(list.Cottages))
}

func TestPagination_FailedFirstPageKeepsList(t *testing.T) {
	svc, api := newCottageService(t, 2)
	sess := session.New("sid")
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(page(1, 2), nil),
		api.EXPECT().ListCottages(gomock.Any(), 2, 2).Return(page(3, 4), nil),
		api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(nil, resortapi.ErrUnexpectedFormat),
	)

	_, err := svc.FirstPage(ctx, sess)
	require.NoError(t, err)
	_, err = svc.LoadMore(ctx, sess)
	require.NoError(t, err)

	list, err := svc.FirstPage(ctx, sess)
	assert.ErrorIs(t, err, resortapi.ErrUnexpectedFormat)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(list.Cottages))
	require.NotNil(t, sess.Cottages())
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(sess.Cottages().Cottages))
	assert.Equal(t, 2, sess.Cottages().Page)
}

func TestPagination_FailedFirstPageWithoutList(t *testing.T) {
	svc, api := newCottageService(t, 2)
	sess := session.New("sid")

	api.EXPECT().ListCottages(gomock.Any(), 1, 2).Return(nil, resortapi.ErrUnexpectedFormat)

	list, err := svc.FirstPage(context.Background(), sess)
	assert.Error(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list.Cottages)
	assert.Nil(t, sess.Cottages())
}

func TestLoadMore_WithoutListStartsOver(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")

	api.EXPECT().ListCottages(gomock.Any(), 1, 20).Return(page(1), nil)

	list, err := svc.LoadMore(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.False(t, list.HasMore)
}

func TestOpen(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")

	api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil)

	state, err := svc.Open(context.Background(), sess, 7)
	require.NoError(t, err)
	assert.Equal(t, "Pine", state.Cottage.Name)
	assert.False(t, state.CanBook())
	assert.Same(t, state, sess.Booking(7))
}

func TestOpen_NotFound(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")

	api.EXPECT().GetCottage(gomock.Any(), int64(99)).
		Return(nil, &resortapi.APIError{StatusCode: http.StatusNotFound, Message: "Not found."})

	_, err := svc.Open(context.Background(), sess, 99)
	assert.True(t, resortapi.IsStatus(err, http.StatusNotFound))
	assert.Nil(t, sess.Booking(99))
}

func TestBook_RequiresPositiveAvailability(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")
	sess.SetToken("tok")
	ctx := context.Background()

	api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil)
	api.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Open(ctx, sess, 7)
	require.NoError(t, err)

	state, err := svc.Book(ctx, sess, 7, "")
	require.NoError(t, err)
	assert.Equal(t, models.MsgCheckFirst, state.Notice)

	api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&resortapi.Availability{Available: false, Message: "The cottage is not available for the selected dates."}, nil)

	state, err = svc.CheckAvailability(ctx, sess, 7, dates, "")
	require.NoError(t, err)
	assert.False(t, state.CanBook())

	state, err = svc.Book(ctx, sess, 7, "")
	require.NoError(t, err)
	assert.Equal(t, models.MsgCheckFirst, state.Notice)
}

func TestCheckAndBook(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")
	sess.SetToken("tok")
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil),
		api.EXPECT().CheckAvailability(gomock.Any(),
			resortapi.AvailabilityRequest{Cottage: 7, CheckIn: "2026-11-01", CheckOut: "2026-11-04"}, "csrf").
			Return(&resortapi.Availability{Available: true, Message: "The cottage is available for the selected dates."}, nil),
		api.EXPECT().CreateBooking(gomock.Any(),
			resortapi.BookingRequest{CottageID: 7, CheckIn: "2026-11-01", CheckOut: "2026-11-04"}, "tok", "csrf").
			Return(nil),
	)

	_, err := svc.Open(ctx, sess, 7)
	require.NoError(t, err)

	state, err := svc.CheckAvailability(ctx, sess, 7, dates, "csrf")
	require.NoError(t, err)
	assert.True(t, state.CanBook())
	assert.Equal(t, "The cottage is available for the selected dates.", state.Message)

	state, err = svc.Book(ctx, sess, 7, "csrf")
	require.NoError(t, err)
	assert.Equal(t, models.MsgBookingConfirmed, state.Notice)
	assert.False(t, state.CanBook(), "a new check is needed after booking")
}

func TestBook_APIFailure(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")
	sess.SetToken("tok")
	ctx := context.Background()

	api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil)
	api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&resortapi.Availability{Available: true}, nil)
	api.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&resortapi.APIError{StatusCode: http.StatusForbidden})

	_, err := svc.CheckAvailability(ctx, sess, 7, dates, "")
	require.NoError(t, err)

	state, err := svc.Book(ctx, sess, 7, "")
	require.NoError(t, err)
	assert.Equal(t, models.MsgBookingFailed, state.Notice)
	assert.False(t, state.CanBook())
}

func TestBook_RequiresToken(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")
	ctx := context.Background()

	api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil)
	api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&resortapi.Availability{Available: true}, nil)

	_, err := svc.CheckAvailability(ctx, sess, 7, dates, "")
	require.NoError(t, err)

	state, err := svc.Book(ctx, sess, 7, "")
	require.NoError(t, err)
	assert.Equal(t, models.MsgLoginToBook, state.Notice)
	assert.True(t, state.CanBook(), "no request was made, the check still stands")
}

func TestCheckAvailability_Failures(t *testing.T) {
	tests := []struct {
		name    string
		form    models.DatesForm
		setup   func(api *mocks.MockAPI)
		message string
	}{
		{
			name: "api error",
			form: dates,
			setup: func(api *mocks.MockAPI) {
				api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &resortapi.APIError{StatusCode: http.StatusBadRequest})
			},
			message: models.MsgAvailabilityFailed,
		},
		{
			name: "transport error",
			form: dates,
			setup: func(api *mocks.MockAPI) {
				api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			message: models.MsgAvailabilityFailed,
		},
		{
			name:    "invalid dates",
			form:    models.DatesForm{CheckIn: "tomorrow", CheckOut: "2026-11-04"},
			setup:   func(*mocks.MockAPI) {},
			message: models.MsgInvalidDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newCottageService(t, 20)
			sess := session.New("sid")
			sess.SetBooking(models.NewBookingState(pine))
			sess.Booking(7).RecordAvailability("2026-10-01", "2026-10-02", resortapi.Availability{Available: true})
			tt.setup(api)

			state, err := svc.CheckAvailability(context.Background(), sess, 7, tt.form, "")

			require.NoError(t, err)
			assert.Equal(t, tt.message, state.Message)
			assert.False(t, state.CanBook(), "a failed check replaces the earlier positive result")
		})
	}
}

func TestCheckAvailability_ReopensUnknownCottage(t *testing.T) {
	svc, api := newCottageService(t, 20)
	sess := session.New("sid")
	sess.SetBooking(models.NewBookingState(resortapi.Cottage{ID: 3}))

	gomock.InOrder(
		api.EXPECT().GetCottage(gomock.Any(), int64(7)).Return(&pine, nil),
		api.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&resortapi.Availability{Available: true}, nil),
	)

	state, err := svc.CheckAvailability(context.Background(), sess, 7, dates, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), state.Cottage.ID)
	assert.Nil(t, sess.Booking(3))
}

func ids(cottages []resortapi.Cottage) []int64 {
	out := make([]int64, len(cottages))
	for i, c := range cottages {
		out[i] = c.ID
	}
	return out
}
