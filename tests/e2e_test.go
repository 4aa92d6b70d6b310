package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/request"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/response"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/handler"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/repository"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/router"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/service"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/testutil"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminPassword = "test-password"
	testJWTSecret     = "test-secret"
)

type E2ETestSuite struct {
	server *httptest.Server
	token  string
}

func setupE2ETest(t *testing.T) *E2ETestSuite {
	db := testutil.NewTestDB(t)

	teamRepo := repository.NewTeamRepository(db)
	voterRepo := repository.NewVoterRepository(db)
	judgeRepo := repository.NewJudgeRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	validate := validator.New()

	authService := service.NewAuthService(teamRepo, voterRepo, judgeRepo, testAdminPassword, testJWTSecret)
	voteService := service.NewVoteService(voteRepo, voterRepo, judgeRepo, teamRepo)
	teamService := service.NewTeamService(teamRepo)
	judgeService := service.NewJudgeService(judgeRepo)
	voterService := service.NewVoterService(voterRepo)
	resultsService := service.NewResultsService(teamRepo, voteRepo)

	r := router.SetupRouter(
		handler.NewAuthHandler(authService, validate),
		handler.NewVoteHandler(voteService, validate),
		handler.NewTeamHandler(teamService, validate),
		handler.NewRosterHandler(teamService),
		handler.NewJudgeHandler(judgeService, validate),
		handler.NewVoterHandler(voterService),
		handler.NewResultsHandler(resultsService),
		handler.NewHealthHandler(),
		authService,
	)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	suite := &E2ETestSuite{server: server}
	suite.token = suite.adminToken(t)
	return suite
}

func (s *E2ETestSuite) adminToken(t *testing.T) string {
	var resp response.AdminLoginResponse
	status := s.postJSON(t, "/admin/login", "", request.AdminLoginRequest{Password: testAdminPassword}, &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *E2ETestSuite) postJSON(t *testing.T, path, token string, body, out any) int {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return s.do(t, req, out)
}

func (s *E2ETestSuite) getJSON(t *testing.T, path, token string, out any) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return s.do(t, req, out)
}

func (s *E2ETestSuite) do(t *testing.T, req *http.Request, out any) int {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *E2ETestSuite) saveRoster(t *testing.T) response.AdminTeamsResponse {
	t.Helper()

	saveReq := request.SaveTeamsRequest{
		Teams: []request.SaveTeamEntry{
			{TeamNumber: 1, TeamName: "Alpha", LeaderName: "alice", Member2Name: "bob", TotalMembers: 2, TeamGroup: "A"},
			{TeamNumber: 2, TeamName: "Beta", LeaderName: "carol", TotalMembers: 1, TeamGroup: "A"},
			{TeamNumber: 1, TeamName: "Bravo", LeaderName: "dave", TotalMembers: 1, TeamGroup: "B"},
		},
	}
	var saveResp response.RosterImportResponse
	status := s.postJSON(t, "/admin/teams/save", s.token, saveReq, &saveResp)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, saveResp.TeamsImported)

	var teams response.AdminTeamsResponse
	status = s.getJSON(t, "/admin/teams", s.token, &teams)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, teams.Count)
	return teams
}

func TestHealth(t *testing.T) {
	s := setupE2ETest(t)

	resp, err := http.Head(s.server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := setupE2ETest(t)

	status := s.getJSON(t, "/admin/teams", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status = s.getJSON(t, "/admin/teams", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestVotingFlow(t *testing.T) {
	s := setupE2ETest(t)
	teams := s.saveRoster(t)

	// Alpha leader authenticates with the generated code.
	alpha := teams.Teams[0]
	var authResp response.VoterAuthResponse
	status := s.postJSON(t, "/vote/authenticate", "", request.VoterAuthRequest{
		LdapNickname: "alice",
		AuthCode:     alpha.LeaderAuthCode,
	}, &authResp)
	require.Equal(t, http.StatusOK, status)
	voterID := authResp.Voter.ID

	// Wrong code is rejected for a fresh member.
	status = s.postJSON(t, "/vote/authenticate", "", request.VoterAuthRequest{
		LdapNickname: "bob",
		AuthCode:     "000000",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Vote for Beta, the other team in group A.
	beta := teams.Teams[1]
	var voteResp response.VoteResponse
	status = s.postJSON(t, "/vote/submit", "", request.VoterVoteRequest{
		VoteType: "idea",
		VoterID:  voterID,
		TeamID:   beta.ID,
	}, &voteResp)
	require.Equal(t, http.StatusCreated, status)
	assert.Greater(t, voteResp.VoteID, int64(0))

	// Second idea vote conflicts.
	status = s.postJSON(t, "/vote/submit", "", request.VoterVoteRequest{
		VoteType: "idea",
		VoterID:  voterID,
		TeamID:   beta.ID,
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	// Own team is off limits.
	status = s.postJSON(t, "/vote/submit", "", request.VoterVoteRequest{
		VoteType: "implementation",
		VoterID:  voterID,
		TeamID:   alpha.ID,
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	// Cross-group vote is forbidden.
	bravo := teams.Teams[2]
	status = s.postJSON(t, "/vote/submit", "", request.VoterVoteRequest{
		VoteType: "implementation",
		VoterID:  voterID,
		TeamID:   bravo.ID,
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)

	var results response.ResultsResponse
	status = s.getJSON(t, "/results", "", &results)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, results.Results, 3)
	assert.Equal(t, 1, results.Results[1].IdeaVotes)
	assert.Equal(t, []string{"alice"}, results.Results[1].IdeaVoters)
}

func TestJudgeFlow(t *testing.T) {
	s := setupE2ETest(t)
	teams := s.saveRoster(t)

	// Unknown judges cannot authenticate.
	status := s.postJSON(t, "/judge/authenticate", "", request.JudgeAuthRequest{Name: "Grace"}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var createResp response.JudgeResponse
	status = s.postJSON(t, "/admin/judges", s.token, request.CreateJudgeRequest{
		Name:       "Grace",
		JudgeGroup: "A",
	}, &createResp)
	require.Equal(t, http.StatusCreated, status)

	// Duplicate names are rejected, case-insensitively.
	status = s.postJSON(t, "/admin/judges", s.token, request.CreateJudgeRequest{
		Name:       "gRACE",
		JudgeGroup: "B",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	var authResp response.JudgeAuthResponse
	status = s.postJSON(t, "/judge/authenticate", "", request.JudgeAuthRequest{Name: "Grace"}, &authResp)
	require.Equal(t, http.StatusOK, status)
	judgeID := authResp.Judge.ID

	alpha, beta := teams.Teams[0], teams.Teams[1]
	status = s.postJSON(t, "/judge/submit", "", request.JudgeVoteRequest{
		VoteType: "idea", JudgeID: judgeID, TeamID: alpha.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, status)
	status = s.postJSON(t, "/judge/submit", "", request.JudgeVoteRequest{
		VoteType: "idea", JudgeID: judgeID, TeamID: beta.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	// Both idea votes spent.
	status = s.postJSON(t, "/judge/submit", "", request.JudgeVoteRequest{
		VoteType: "idea", JudgeID: judgeID, TeamID: alpha.ID,
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	var rankings response.RankingsResponse
	status = s.getJSON(t, "/results/rankings", "", &rankings)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, rankings.Rankings)
	assert.Equal(t, "A", rankings.Rankings[0].Group)
	assert.Len(t, rankings.Rankings[0].Entries, 2)

	// Reset wipes the judge's ledger entries and quota.
	var resetResp response.ResetVotesResponse
	status = s.postJSON(t, "/admin/judges/1/reset-votes", s.token, struct{}{}, &resetResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), resetResp.RemovedVotes)

	status = s.postJSON(t, "/judge/submit", "", request.JudgeVoteRequest{
		VoteType: "idea", JudgeID: judgeID, TeamID: alpha.ID,
	}, nil)
	assert.Equal(t, http.StatusCreated, status)
}

func TestVoterReset(t *testing.T) {
	s := setupE2ETest(t)
	teams := s.saveRoster(t)

	alpha, beta := teams.Teams[0], teams.Teams[1]

	var authResp response.VoterAuthResponse
	status := s.postJSON(t, "/vote/authenticate", "", request.VoterAuthRequest{
		LdapNickname: "alice",
		AuthCode:     alpha.LeaderAuthCode,
	}, &authResp)
	require.Equal(t, http.StatusOK, status)

	status = s.postJSON(t, "/vote/submit", "", request.VoterVoteRequest{
		VoteType: "idea", VoterID: authResp.Voter.ID, TeamID: beta.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var voters response.VotersResponse
	status = s.getJSON(t, "/admin/voters", s.token, &voters)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, voters.Count)
	assert.True(t, voters.Voters[0].HasVotedIdea)

	var resetResp response.ResetVotesResponse
	status = s.postJSON(t, "/admin/voters/1/reset-votes", s.token, struct{}{}, &resetResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), resetResp.RemovedVotes)

	// The member can authenticate again from scratch.
	status = s.postJSON(t, "/vote/authenticate", "", request.VoterAuthRequest{
		LdapNickname: "alice",
		AuthCode:     alpha.LeaderAuthCode,
	}, &authResp)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, authResp.Voter.HasVotedIdea)
}

func TestPublicTeamsHideAuthCodes(t *testing.T) {
	s := setupE2ETest(t)
	s.saveRoster(t)

	resp, err := http.Get(s.server.URL + "/teams?group=A")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "auth_code")

	var teams response.TeamsResponse
	require.NoError(t, json.Unmarshal(body, &teams))
	assert.Equal(t, 2, teams.Count)

	status := s.getJSON(t, "/teams?group=Z", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAuthCodesExport(t *testing.T) {
	s := setupE2ETest(t)
	s.saveRoster(t)

	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/admin/auth-codes/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "auth_codes.xlsx")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
