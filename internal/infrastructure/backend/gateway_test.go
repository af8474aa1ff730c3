package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

func newTestServer(t *testing.T, register func(e *echo.Echo)) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient() *Client {
	return NewClient(Config{}, zerolog.Nop())
}

func TestAuthGateway_Success(t *testing.T) {
	var got map[string]any
	srv := newTestServer(t, func(e *echo.Echo) {
		e.POST("/auth", func(c echo.Context) error {
			if c.Request().Header.Get(headerRequestID) == "" {
				t.Errorf("missing request id header")
			}
			if err := json.NewDecoder(c.Request().Body).Decode(&got); err != nil {
				t.Errorf("decode body: %v", err)
			}
			return c.JSON(http.StatusOK, map[string]any{
				"success": true,
				"user":    map[string]any{"id": 3, "email": "a@b.c", "full_name": "A B", "phone": "+7"},
				"token":   "tok",
			})
		})
	})

	gw := NewAuthGateway(newTestClient(), srv.URL+"/auth")
	resp, err := gw.Authenticate(context.Background(), ports.AuthRequest{Action: ports.ActionLogin, Email: "a@b.c", Password: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &ports.AuthResponse{
		StatusCode: 200,
		Success:    true,
		User:       &domain.User{ID: 3, Email: "a@b.c", FullName: "A B", Phone: "+7"},
		Token:      "tok",
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
	wantBody := map[string]any{"action": "login", "email": "a@b.c", "password": "p"}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthGateway_Rejected(t *testing.T) {
	srv := newTestServer(t, func(e *echo.Echo) {
		e.POST("/auth", func(c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
		})
	})

	resp, err := NewAuthGateway(newTestClient(), srv.URL+"/auth").Authenticate(context.Background(), ports.AuthRequest{Action: ports.ActionLogin})
	if err != nil {
		t.Fatalf("rejection must not be a transport error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized || resp.Success || resp.Error != "Invalid credentials" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthGateway_NonJSONErrorBody(t *testing.T) {
	srv := newTestServer(t, func(e *echo.Echo) {
		e.POST("/auth", func(c echo.Context) error {
			return c.String(http.StatusBadGateway, "<html>bad gateway</html>")
		})
	})

	resp, err := NewAuthGateway(newTestClient(), srv.URL+"/auth").Authenticate(context.Background(), ports.AuthRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway || resp.Error != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthGateway_NonJSONSuccessBodyIsError(t *testing.T) {
	srv := newTestServer(t, func(e *echo.Echo) {
		e.POST("/auth", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
	})

	if _, err := NewAuthGateway(newTestClient(), srv.URL+"/auth").Authenticate(context.Background(), ports.AuthRequest{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestProvisioningGateway_CreateOrder(t *testing.T) {
	var body map[string]any
	var idemKey string
	srv := newTestServer(t, func(e *echo.Echo) {
		e.POST("/orders", func(c echo.Context) error {
			idemKey = c.Request().Header.Get(headerIdemKey)
			if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			return c.JSON(http.StatusCreated, map[string]any{
				"success": true,
				"order":   map[string]any{"id": 1},
				"server": map[string]any{
					"server_ip": "185.101.1.11", "server_port": 7778,
					"ftp_host": "185.101.1.11", "ftp_user": "user_1", "ftp_password": "pass_1_ftP",
					"db_host": "db.lordhost.ru", "db_name": "server_1", "db_user": "user_1", "db_password": "dbpass_1",
					"status": "installing",
				},
				"message": "created",
			})
		})
	})

	gw := NewProvisioningGateway(newTestClient(), srv.URL+"/orders")
	resp, err := gw.CreateOrder(context.Background(), ports.CreateOrderRequest{
		CustomerName: "Ivan", CustomerEmail: "i@e.com", PlanType: "Pro",
		Slots: 10, Days: 30, TotalPrice: 649, ServerName: "srv", GameType: "CRMP",
	}, "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.StatusCode != http.StatusCreated || resp.Server == nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Server.Address() != "185.101.1.11:7778" || resp.Server.DBPassword != "dbpass_1" {
		t.Fatalf("unexpected server: %+v", resp.Server)
	}
	if idemKey != "key-1" {
		t.Fatalf("expected idempotency key, got %q", idemKey)
	}
	if v, ok := body["userId"]; !ok || v != nil {
		t.Fatalf("expected explicit null userId, got %v (present=%v)", v, ok)
	}
	if body["totalPrice"] != float64(649) || body["gameType"] != "CRMP" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestProvisioningGateway_ListOrders(t *testing.T) {
	var gotEmail string
	srv := newTestServer(t, func(e *echo.Echo) {
		e.GET("/orders", func(c echo.Context) error {
			gotEmail = c.QueryParam("email")
			return c.JSONBlob(http.StatusOK, []byte(`{"orders":[
				{"id":5,"server_name":"RP","plan_type":"VIP","slots":50,"days":30,"total_price":1699.0,
				 "game_type":"SAMP","status":"pending","expires_at":"2026-11-18T10:00:00",
				 "server_ip":"185.105.5.15","server_port":7782,"server_status":"installing","ftp_user":"user_5"}]}`))
		})
	})

	resp, err := NewProvisioningGateway(newTestClient(), srv.URL+"/orders").ListOrders(context.Background(), "a+b@c.d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEmail != "a+b@c.d" {
		t.Fatalf("email not escaped properly, got %q", gotEmail)
	}
	want := []domain.OrderRecord{{
		ID: 5, ServerName: "RP", PlanType: "VIP", Slots: 50, Days: 30, TotalPrice: 1699,
		GameType: "SAMP", Status: "pending", ExpiresAt: "2026-11-18T10:00:00",
		ServerIP: "185.105.5.15", ServerPort: 7782, ServerStatus: "installing",
	}}
	if diff := cmp.Diff(want, resp.Orders); diff != "" {
		t.Fatalf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := newTestServer(t, func(e *echo.Echo) {
		e.GET("/orders", func(c echo.Context) error {
			select {
			case <-c.Request().Context().Done():
			case <-time.After(2 * time.Second):
			}
			return c.NoContent(http.StatusOK)
		})
	})

	client := NewClient(Config{Timeout: 50 * time.Millisecond}, zerolog.Nop())
	_, err := NewProvisioningGateway(client, srv.URL+"/orders").ListOrders(context.Background(), "a@b.c")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
