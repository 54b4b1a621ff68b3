package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medtrackhq/medtrack/internal/models"
	"github.com/medtrackhq/medtrack/internal/store"
	"github.com/medtrackhq/medtrack/internal/store/memstore"
)

func newTestApp(t *testing.T) (*fiber.App, *memstore.MemStore) {
	t.Helper()

	mem := memstore.New()
	app := fiber.New()
	RegisterRoutes(app, NewHandler(mem, time.UTC))
	return app, mem
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, body any) *http.Response {
	t.Helper()

	var request *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		request = httptest.NewRequest(method, path, bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
	} else {
		request = httptest.NewRequest(method, path, nil)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func createMedication(mem *memstore.MemStore, name string, times []string) (models.Medication, error) {
	return mem.CreateMedication(store.MedicationInput{
		Name:      name,
		Dosage:    "10mg",
		Frequency: "once daily",
		Times:     times,
	})
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()

	if response.StatusCode != want {
		t.Fatalf("status = %d, want %d", response.StatusCode, want)
	}
}
