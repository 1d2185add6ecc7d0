package bookingapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/cinetick/pkg/apiclient"
	"github.com/cinetick/cinetick/pkg/bookingapi"
	"github.com/cinetick/cinetick/pkg/session"
)

// newTestClient wires a booking client, a session store over in-memory
// storage and the pipeline's unauthorized hook the same way the app does.
func newTestClient(t *testing.T, handler http.Handler) (*bookingapi.Client, *session.Store, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(session.NewMemoryStorage())
	require.NoError(t, err)

	pipeline, err := apiclient.New(server.URL,
		apiclient.WithTokenSource(store),
		apiclient.WithUnauthorizedHandler(func(context.Context) { _ = store.ClearToken() }),
	)
	require.NoError(t, err)

	return bookingapi.New(pipeline), store, server
}

func TestLogin(t *testing.T) {
	t.Parallel()

	api, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var creds bookingapi.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "x", creds.Password)

		w.Write([]byte(`{"code":0,"message":"ok","data":{"id":12,"username":"alice","name":"Alice","token":"tok-login"}}`))
	}))

	user, err := api.Login(context.Background(), bookingapi.Credentials{Username: "alice", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, store.SetUserInfo(session.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Token:    user.Token,
	}))

	current := store.Current()
	assert.Equal(t, int64(12), current.UserID)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "Alice", current.Name)
	assert.Equal(t, "tok-login", current.Token)
	assert.Equal(t, "tok-login", store.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	api, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"bad credentials"}`))
	}))

	_, err := api.Login(context.Background(), bookingapi.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	assert.Equal(t, session.Session{}, store.Current())
}

func TestCinemas(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cinemas", r.URL.Path)
		w.Write([]byte(`{"code":0,"data":[{"id":1,"name":"Grand","location":"Main St"}]}`))
	}))

	cinemas, err := api.Cinemas(context.Background())
	require.NoError(t, err)
	require.Len(t, cinemas, 1)
	assert.Equal(t, "Grand", cinemas[0].Name)
	assert.Equal(t, "Main St", cinemas[0].Location)
}

func TestSchedules(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/schedules", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("cinemaId"))
		assert.Equal(t, "2026-08-29", r.URL.Query().Get("date"))
		w.Write([]byte(`{"code":0,"data":[{"id":7,"movieId":3,"movieTitle":"Solaris","hallId":2,"hallName":"Hall B","startTime":"2026-08-29T18:30:00Z","endTime":"2026-08-29T21:00:00Z"}]}`))
	}))

	schedules, err := api.Schedules(context.Background(), 5, "2026-08-29")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Solaris", schedules[0].MovieTitle)
	assert.Equal(t, "Hall B", schedules[0].HallName)
}

func TestSchedules_NoDateFilter(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("date"))
		w.Write([]byte(`{"code":0,"data":[]}`))
	}))

	schedules, err := api.Schedules(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestSeatMap(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/schedules/7/seats", r.URL.Path)
		w.Write([]byte(`{"code":0,"data":{"hallName":"Hall B","rows":2,"cols":2,"seats":[
			{"id":1,"row":1,"col":1,"status":"AVAILABLE","type":"NORMAL"},
			{"id":2,"row":1,"col":2,"status":"SOLD","type":"VIP","price":25.5}
		]}}`))
	}))

	seatMap, err := api.SeatMap(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Hall B", seatMap.HallName)
	require.Len(t, seatMap.Seats, 2)
	assert.True(t, seatMap.Seats[0].Available())
	assert.False(t, seatMap.Seats[1].Available())
	assert.Nil(t, seatMap.Seats[0].Price)
	require.NotNil(t, seatMap.Seats[1].Price)
	assert.Equal(t, 25.5, *seatMap.Seats[1].Price)
}

func TestLockSeats(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var req bookingapi.CreateOrder
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(7), req.ScheduleID)
		assert.Equal(t, []int64{1, 2}, req.SeatIDs)

		w.Write([]byte(`{"code":0,"data":{"orderId":31,"expiresAt":"2026-08-29T18:45:00Z"}}`))
	}))

	lock, err := api.LockSeats(context.Background(), bookingapi.CreateOrder{ScheduleID: 7, SeatIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(31), lock.OrderID)
	assert.Equal(t, time.Date(2026, 8, 29, 18, 45, 0, 0, time.UTC), lock.ExpiresAt)
}

func TestLockSeats_Conflict(t *testing.T) {
	t.Parallel()

	api, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":4090,"message":"seat 2 is no longer available"}`))
	}))
	require.NoError(t, store.SetUserInfo(session.UserInfo{ID: 1, Username: "alice", Name: "Alice", Token: "tok"}))

	_, err := api.LockSeats(context.Background(), bookingapi.CreateOrder{ScheduleID: 7, SeatIDs: []int64{1, 2}})
	assert.ErrorIs(t, err, apiclient.ErrConflict)

	// A business conflict never touches the session.
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, "alice", store.Current().Username)
}

func TestPayOrder(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/31/pay", r.URL.Path)
		w.Write([]byte(`{"code":0,"message":"ok","data":null}`))
	}))

	assert.NoError(t, api.PayOrder(context.Background(), 31))
}

func TestPayOrder_Expired(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":4091,"message":"order expired"}`))
	}))

	err := api.PayOrder(context.Background(), 31)
	assert.ErrorIs(t, err, apiclient.ErrConflict)
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/31/cancel", r.URL.Path)
		w.Write([]byte(`{"code":0,"data":null}`))
	}))

	assert.NoError(t, api.CancelOrder(context.Background(), 31))
}

func TestMyOrders_CarriesPersistedToken(t *testing.T) {
	t.Parallel()

	api, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "tok-login", r.Header.Get("Authorization"))
		w.Write([]byte(`{"code":0,"data":[{"id":31,"movieTitle":"Solaris","hallName":"Hall B","startTime":"2026-08-29T18:30:00Z","seatNumbers":["1-1","1-2"],"status":"PENDING","createdAt":"2026-08-29T18:30:00Z","expiresAt":"2026-08-29T18:45:00Z","totalAmount":51}]}`))
	}))
	require.NoError(t, store.SetUserInfo(session.UserInfo{ID: 12, Username: "alice", Name: "Alice", Token: "tok-login"}))

	orders, err := api.MyOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Pending())
	assert.Equal(t, []string{"1-1", "1-2"}, orders[0].SeatNumbers)
	require.NotNil(t, orders[0].TotalAmount)
	assert.Equal(t, 51.0, *orders[0].TotalAmount)
	require.NotNil(t, orders[0].ExpiresAt)
}

func TestMyOrders_ExpiredSessionClearsToken(t *testing.T) {
	t.Parallel()

	api, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "expired123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"session expired"}`))
	}))
	require.NoError(t, store.SetToken("expired123"))

	_, err := api.MyOrders(context.Background())
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

	// The hook removed the persisted token; the next guarded navigation
	// lands on login.
	assert.Empty(t, store.Token())
}
