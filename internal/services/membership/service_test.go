package membership

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
)

// fakeChecker reports membership from a fixed map
type fakeChecker struct {
	members map[string]bool
}

func (f *fakeChecker) IsMember(_ context.Context, communityID, _ string) (bool, error) {
	return f.members[communityID], nil
}

type MembershipServiceTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MembershipServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *MembershipServiceTestSuite) newServer(body string, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func (s *MembershipServiceTestSuite) TestCheckAccess_AllJoined() {
	server := s.newServer(`{"ok":true,"data":[
		{"id":"guild-1","title":"Main","invite_url":"https://example.com/1","MandatoryMembership":true}
	]}`, nil)
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{members: map[string]bool{"guild-1": true}},
	})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Require().NoError(err)
	s.True(result.Authorized)
	s.Empty(result.Missing)
}

func (s *MembershipServiceTestSuite) TestCheckAccess_MissingCommunities() {
	server := s.newServer(`{"ok":true,"data":[
		{"id":"guild-1","title":"Main","invite_url":"https://example.com/1","MandatoryMembership":true},
		{"id":"guild-2","title":"Side","invite_url":"https://example.com/2","MandatoryMembership":true}
	]}`, nil)
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{members: map[string]bool{"guild-1": true}},
	})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Require().NoError(err)
	s.False(result.Authorized)
	s.Require().Len(result.Missing, 1)
	s.Equal("guild-2", result.Missing[0].ID)
	s.Equal("https://example.com/2", result.Missing[0].InviteURL)
}

func (s *MembershipServiceTestSuite) TestCheckAccess_GateDisabled() {
	svc, err := New(&Config{})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Require().NoError(err)
	s.True(result.Authorized)
}

func (s *MembershipServiceTestSuite) TestCheckAccess_SkipsOptionalCommunities() {
	server := s.newServer(`{"ok":true,"data":[
		{"id":"guild-1","title":"Main","invite_url":"https://example.com/1","MandatoryMembership":true},
		{"id":"guild-3","title":"Optional","invite_url":"https://example.com/3","MandatoryMembership":false},
		{"id":"guild-4","title":"Untagged","invite_url":"https://example.com/4"}
	]}`, nil)
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{members: map[string]bool{"guild-1": true}},
	})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Require().NoError(err)
	s.True(result.Authorized)
	s.Empty(result.Missing)
}

func (s *MembershipServiceTestSuite) TestCheckAccess_EndpointNotOK() {
	server := s.newServer(`{"ok":false,"data":[]}`, nil)
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{},
	})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Error(err)
	s.Nil(result)
}

func (s *MembershipServiceTestSuite) TestCheckAccess_CachesCommunityList() {
	var hits int32
	server := s.newServer(`{"ok":true,"data":[
		{"id":"guild-1","title":"Main","invite_url":"https://example.com/1","MandatoryMembership":true}
	]}`, &hits)
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{members: map[string]bool{"guild-1": true}},
	})
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})
		s.Require().NoError(err)
	}

	s.Equal(int32(1), atomic.LoadInt32(&hits))
}

func (s *MembershipServiceTestSuite) TestCheckAccess_EndpointErrorWithoutCache() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, err := New(&Config{
		APIURL:  server.URL,
		Checker: &fakeChecker{},
	})
	s.Require().NoError(err)

	result, err := svc.CheckAccess(s.ctx, &CheckAccessInput{ActorID: "actor-1"})

	s.Error(err)
	s.Nil(result)
}

func TestMembershipServiceSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
