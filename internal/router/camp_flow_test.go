package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/23F3001886/CleanEarth/internal/models"
)

func TestCampRegister_MarksRequestInProgress(t *testing.T) {
	server, db := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")

	campID := createCamp(t, server.URL, vol, reqID, 5)
	require.NotZero(t, campID)

	var req models.Request
	require.NoError(t, db.First(&req, reqID).Error)
	require.Equal(t, models.RequestInProgress, req.Status)

	// plain users cannot register camps
	status, _ := doJSON(t, http.MethodPost, server.URL+"/api/camp_register", reporter, map[string]interface{}{
		"requestId":          reqID,
		"campName":           "Nope",
		"dateOfCamp":         "2027-03-14",
		"timeOfCamp":         "09:00",
		"numberOfVolunteers": 5,
	})
	require.Equal(t, http.StatusForbidden, status)
}

func TestCampRegister_UnknownRequest(t *testing.T) {
	server, _ := newTestServer(t)
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")

	status, body := doJSON(t, http.MethodPost, server.URL+"/api/camp_register", vol, map[string]interface{}{
		"requestId":          99999,
		"campName":           "Ghost camp",
		"dateOfCamp":         "2027-03-14",
		"timeOfCamp":         "09:00",
		"numberOfVolunteers": 5,
	})
	require.Equal(t, http.StatusBadRequest, status, "%v", body)
	require.Equal(t, "Referenced waste request does not exist", body["error"])
}

func TestUserCamps_ParticipationInfo(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 3)

	status, list := doJSONList(t, http.MethodGet, server.URL+"/api/user_camps", reporter)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	camp := list[0]
	require.Equal(t, float64(campID), camp["id"])
	require.Equal(t, false, camp["isParticipating"])
	require.Equal(t, float64(0), camp["participationCount"])
	require.Equal(t, float64(3), camp["spotsLeft"])

	// joining updates the counters
	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), reporter, nil)
	require.Equal(t, http.StatusOK, status, "%v", body)
	require.Equal(t, float64(1), body["participationCount"])
	require.Equal(t, float64(2), body["spotsLeft"])

	status, list = doJSONList(t, http.MethodGet, server.URL+"/api/user_camps", reporter)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, list[0]["isParticipating"])
}

func TestCampParticipate_DuplicateAndCapacity(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 1)

	status, _ := doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), reporter, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), reporter, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Already participating in this camp", body["error"])

	// second account hits the capacity wall
	other := registerUser(t, server.URL, "Ben", "ben@example.com", "user", "560001")
	status, body = doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), other, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "This camp is already full", body["error"])
}

func TestCampRespond(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	status, _ := doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), vol, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_respond", campID), vol, map[string]string{
		"response": "confirmed",
	})
	require.Equal(t, http.StatusOK, status, "%v", body)
	require.Equal(t, "confirmed", body["participation_status"])

	// only confirmed/declined are accepted
	status, _ = doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_respond", campID), vol, map[string]string{
		"response": "maybe",
	})
	require.Equal(t, http.StatusBadRequest, status)

	// responding without having joined fails
	status, _ = doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_respond", campID), reporter, map[string]string{
		"response": "confirmed",
	})
	require.Equal(t, http.StatusNotFound, status)
}

func TestJoinCampaign_VolunteerOnly(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	other := registerUser(t, server.URL, "Other", "other@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/join-campaign", campID), reporter, nil)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Only volunteers can join campaigns", body["error"])

	status, _ = doJSON(t, http.MethodPost, campURL(server.URL, "/api/join-campaign", campID), other, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, http.MethodPost, campURL(server.URL, "/api/join-campaign", campID), other, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Already joined this campaign", body["error"])
}

func TestCompleteCampaign_SimpleVariant(t *testing.T) {
	server, db := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/complete-campaign", campID), vol, nil)
	require.Equal(t, http.StatusOK, status, "%v", body)

	var camp models.Campaign
	require.NoError(t, db.First(&camp, campID).Error)
	require.Equal(t, models.CampCompleted, camp.Status)
}

func TestLeaveCampaign(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	// leaving before joining is a 404
	status, _ := doJSON(t, http.MethodPost, campURL(server.URL, "/api/leave-campaign", campID), reporter, nil)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, http.MethodPost, campURL(server.URL, "/api/camp_participate", campID), reporter, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/leave-campaign", campID), reporter, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Successfully left the campaign", body["message"])
}

func TestCompleteCamp_CascadesRequestStatus(t *testing.T) {
	server, db := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	// only the creator (or an admin) may complete
	status, _ := doJSON(t, http.MethodPost, campURL(server.URL, "/api/complete-camp", campID), reporter, map[string]interface{}{
		"actual_participants": 4,
	})
	require.Equal(t, http.StatusForbidden, status)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/complete-camp", campID), vol, map[string]interface{}{
		"actual_participants": 4,
		"waste_collected":     "120kg",
		"image_link":          "https://example.com/after.jpg",
		"completion_notes":    "Done before noon",
	})
	require.Equal(t, http.StatusOK, status, "%v", body)

	campaign := body["campaign"].(map[string]interface{})
	require.Equal(t, "completed", campaign["status"])
	require.Equal(t, float64(4), campaign["actual_participants"])

	// the camp and its request flip together
	var req models.Request
	require.NoError(t, db.First(&req, reqID).Error)
	require.Equal(t, models.RequestCompleted, req.Status)

	var camp models.Campaign
	require.NoError(t, db.First(&camp, campID).Error)
	require.Equal(t, models.CampCompleted, camp.Status)
	require.NotNil(t, camp.CompletedAt)
}

func TestVolunteerCamps_AllStatusesInPincode(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")

	req1 := createRequest(t, server.URL, reporter, "560001")
	req2 := createRequest(t, server.URL, reporter, "560001")
	camp1 := createCamp(t, server.URL, vol, req1, 5)
	createCamp(t, server.URL, vol, req2, 5)

	status, body := doJSON(t, http.MethodPost, campURL(server.URL, "/api/complete-camp", camp1), vol, map[string]interface{}{
		"actual_participants": 2,
	})
	require.Equal(t, http.StatusOK, status, "%v", body)

	status, list := doJSONList(t, http.MethodGet, server.URL+"/api/volunteer_camps", vol)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 2, "completed camps stay visible to volunteers")

	statuses := map[string]bool{}
	for _, c := range list {
		statuses[c["status"].(string)] = true
	}
	require.True(t, statuses["completed"])
	require.True(t, statuses["planned"])
}

func TestManageCamp_UpdateAndDelete(t *testing.T) {
	server, _ := newTestServer(t)

	reporter := registerUser(t, server.URL, "Rep", "rep@example.com", "user", "560001")
	vol := registerUser(t, server.URL, "Vol", "vol@example.com", "volunteer", "560001")
	otherVol := registerUser(t, server.URL, "Other", "other@example.com", "volunteer", "560001")
	reqID := createRequest(t, server.URL, reporter, "560001")
	campID := createCamp(t, server.URL, vol, reqID, 5)

	// only the creator may update
	status, _ := doJSON(t, http.MethodPut, server.URL+"/api/managecamp?id="+itoa(campID), otherVol, map[string]interface{}{
		"name": "Hijacked",
	})
	require.Equal(t, http.StatusForbidden, status)

	status, body := doJSON(t, http.MethodPut, server.URL+"/api/managecamp?id="+itoa(campID), vol, map[string]interface{}{
		"name":           "Renamed cleanup",
		"num_volunteers": 8,
	})
	require.Equal(t, http.StatusOK, status, "%v", body)
	campaign := body["campaign"].(map[string]interface{})
	require.Equal(t, "Renamed cleanup", campaign["name"])

	status, _ = doJSON(t, http.MethodDelete, server.URL+"/api/managecamp?id="+itoa(campID), otherVol, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, body = doJSON(t, http.MethodDelete, server.URL+"/api/managecamp?id="+itoa(campID), vol, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Campaign deleted successfully", body["message"])
}
