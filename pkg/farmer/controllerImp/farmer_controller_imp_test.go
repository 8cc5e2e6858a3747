package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"beesurvey/database"
	"beesurvey/entities"
	"beesurvey/pkg/farmer/repository"
	"beesurvey/pkg/farmer/repositoryImp"
	"beesurvey/pkg/farmer/serviceImp"
)

func newCtrl(t *testing.T) (*FarmerCtrl, repository.FarmerRepository) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "survey.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	repo := repositoryImp.New(db)
	return New(serviceImp.NewFarmerService(repo)), repo
}

func post(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestSaveFarmerHomeRejectsMissingFields(t *testing.T) {
	ctrl, repo := newCtrl(t)

	rec := post(t, ctrl.SaveFarmerHome, `{"full_name":"Asha","contact_number":"9999999999"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	// validation failures never reach the store
	latest, err := repo.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest != nil {
		t.Fatalf("invalid submit created a record: %+v", latest)
	}
}

func TestSaveFarmerHomeMergesOwnFields(t *testing.T) {
	ctrl, repo := newCtrl(t)

	rec := post(t, ctrl.SaveFarmerHome, `{
		"full_name":"Asha","contact_number":"9999999999","gender":"female",
		"location_state":"Maharashtra","location_village":"Pune"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	latest, err := repo.Latest()
	if err != nil || latest == nil {
		t.Fatalf("latest: %v %v", latest, err)
	}
	if *latest.FullName != "Asha" || *latest.LocationVillage != "Pune" {
		t.Errorf("fields not stored: %+v", latest)
	}
}

func TestSaveCropDetailsRejectsInvertedDuration(t *testing.T) {
	ctrl, _ := newCtrl(t)

	rec := post(t, ctrl.SaveCropDetails, `{
		"flower1":"Sunflower","flower_types":"Wild","hybrid_crop_variety":"H1",
		"current_area_of_flowering":"2 acres",
		"blooming_durations":[{"id":1,"started_on":"2026-04-01T00:00:00Z","ends_on":"2026-03-01T00:00:00Z"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for end before start", rec.Code)
	}
}

func TestStepEndpointsAccumulateOneRecord(t *testing.T) {
	ctrl, repo := newCtrl(t)

	post(t, ctrl.SaveFarmerHome, `{
		"full_name":"Asha","contact_number":"9999999999","gender":"female",
		"location_state":"Maharashtra","location_village":"Pune"}`)
	post(t, ctrl.SaveLandDetails, `{
		"unit_of_area":"acre","area_value":"3","land_holding":"own"}`)
	post(t, ctrl.SaveBeekeepingDetails, `{
		"fertilizers":"Yes","pesticides":"No",
		"selected_risks":["drought"],"send_consent_form":false}`)

	all, err := repo.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("screens must share one record, got %d", len(all))
	}
	got := all[0]
	if *got.FullName != "Asha" || *got.UnitOfArea != "acre" || *got.Fertilizers != "Yes" {
		t.Errorf("accumulated record incomplete: %+v", got)
	}
	if got.SendConsentForm {
		t.Error("consent flag from beekeeping screen lost")
	}
	if len(got.SelectedRisks) != 1 || got.SelectedRisks[0] != "drought" {
		t.Errorf("risks list lost: %v", got.SelectedRisks)
	}
}

func TestLatestEndpointEmptyStore(t *testing.T) {
	ctrl, _ := newCtrl(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/survey/latest", nil)
	rec := httptest.NewRecorder()
	if err := ctrl.Latest(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 on empty store", rec.Code)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	ctrl, repo := newCtrl(t)

	post(t, ctrl.SaveFarmerHome, `{
		"full_name":"Asha","contact_number":"9999999999","gender":"female",
		"location_state":"Maharashtra","location_village":"Pune"}`)
	latest, _ := repo.Latest()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(latest.ID)
	if err := ctrl.Delete(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if remaining, _ := repo.All(); len(remaining) != 0 {
		t.Fatalf("record not removed: %d remain", len(remaining))
	}
}

func TestSaveResponseIsRecordSnapshot(t *testing.T) {
	ctrl, _ := newCtrl(t)

	rec := post(t, ctrl.SaveFarmerHome, `{
		"full_name":"Asha","contact_number":"9999999999","gender":"female",
		"location_state":"Maharashtra","location_village":"Pune"}`)
	var got entities.FarmerRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == "" || got.FullName == nil || *got.FullName != "Asha" {
		t.Errorf("response snapshot incomplete: %s", rec.Body)
	}
}
