package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbnbweb/internal/http/middleware"
	"hbnbweb/internal/service"
	serviceMocks "hbnbweb/internal/service/mocks"
	"hbnbweb/internal/view"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
		Views:        view.New(),
	})
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHello(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/", Hello(mockSvc))

	mockSvc.On("Hello").Return("hello from mock").Once()

	resp, body := get(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello from mock", body)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextPlain)
	mockSvc.AssertExpectations(t)
}

func TestHBNB(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/hbnb", HBNB(mockSvc))

	mockSvc.On("HBNB").Return("HBNB").Once()

	resp, body := get(t, app, "/hbnb")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HBNB", body)
	mockSvc.AssertExpectations(t)
}

func TestCText(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/c/:text", CText(mockSvc))

	mockSvc.On("C", "is_fun").Return("C is fun").Once()

	resp, body := get(t, app, "/c/is_fun")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "C is fun", body)
	mockSvc.AssertExpectations(t)
}

func TestPythonText(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/python", PythonText(mockSvc))
	app.Get("/python/:text", PythonText(mockSvc))

	t.Run("default text", func(t *testing.T) {
		mockSvc.On("Python", service.DefaultPythonText).Return("Python is cool").Once()

		resp, body := get(t, app, "/python")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Python is cool", body)
		mockSvc.AssertExpectations(t)
	})

	t.Run("explicit text", func(t *testing.T) {
		mockSvc.On("Python", "is_magic").Return("Python is magic").Once()

		resp, body := get(t, app, "/python/is_magic")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Python is magic", body)
		mockSvc.AssertExpectations(t)
	})
}

func TestNumber(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/number/:n", IntParam("n"), Number(mockSvc))

	t.Run("integer", func(t *testing.T) {
		mockSvc.On("Number", "89").Return("89 is a number").Once()

		resp, body := get(t, app, "/number/89")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "89 is a number", body)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non integer never reaches service", func(t *testing.T) {
		resp, _ := get(t, app, "/number/abc")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertNotCalled(t, "Number", mock.Anything)
	})
}

func TestNumberTemplate(t *testing.T) {
	app := newApp()
	app.Get("/number_template/:n", IntParam("n"), NumberTemplate())

	resp, body := get(t, app, "/number_template/42")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
	assert.Contains(t, body, "<h1>Number: 42</h1>")
}

func TestNumberOddOrEven(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/number_odd_or_even/:n", IntParam("n"), NumberOddOrEven(mockSvc))

	mockSvc.On("Parity", "7").Return("odd").Once()

	resp, body := get(t, app, "/number_odd_or_even/7")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
	assert.Contains(t, body, "<h1>Number: 7 is odd</h1>")
	mockSvc.AssertExpectations(t)
}

func TestRenderMissingTemplate(t *testing.T) {
	app := newApp()
	app.Get("/broken", func(c *fiber.Ctx) error {
		return c.Render("does-not-exist", fiber.Map{})
	})

	resp, body := get(t, app, "/broken")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var res errorPayload
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
}

func TestLivenessProbe(t *testing.T) {
	app := newApp()
	app.Get("/healthz", LivenessProbe())

	resp, _ := get(t, app, "/healthz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	app := newApp()
	app.Use(middleware.RequestID())
	RegisterRoutes(app, service.NewGreetingService())

	t.Run("not found route", func(t *testing.T) {
		resp, body := get(t, app, "/non-existent")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), res.RequestID)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/hbnb", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("integer route rejects non integers", func(t *testing.T) {
		for _, target := range []string{
			"/number/abc",
			"/number/-5",
			"/number/+5",
			"/number/3.14",
			"/number/1e3",
			"/number_template/x",
			"/number_odd_or_even/0x10",
		} {
			resp, body := get(t, app, target)

			assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
			var res errorPayload
			require.NoError(t, json.Unmarshal([]byte(body), &res), target)
			assert.Equal(t, "NOT_FOUND", res.Error.Code, target)
		}
	})
}

func TestNumber_LargerThanInt64(t *testing.T) {
	mockSvc := new(serviceMocks.MockGreetingService)
	app := newApp()
	app.Get("/number/:n", IntParam("n"), Number(mockSvc))

	mockSvc.On("Number", "99999999999999999999").Return("99999999999999999999 is a number").Once()

	resp, body := get(t, app, "/number/0099999999999999999999")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "99999999999999999999 is a number", body)
	mockSvc.AssertExpectations(t)
}

func TestCanonicalDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"000", "0", true},
		{"89", "89", true},
		{"007", "7", true},
		{"9223372036854775808", "9223372036854775808", true},
		{"99999999999999999999", "99999999999999999999", true},
		{"", "", false},
		{"-1", "", false},
		{"+1", "", false},
		{" 1", "", false},
		{"1_000", "", false},
		{"١٢", "", false},
	}
	for _, tt := range tests {
		got, ok := canonicalDecimal(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
