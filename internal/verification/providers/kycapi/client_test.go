package kycapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dsa-onboarding/internal/platform/config"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/internal/verification/providers"
	dErrors "dsa-onboarding/pkg/domain-errors"
)

type fakeProvider struct {
	authCalls atomic.Int32
	tokenSeq  atomic.Int32
	// rejectToken makes the next request carrying this token fail with 401.
	rejectToken atomic.Value
	mux         *http.ServeMux
}

func newFakeProvider() *fakeProvider {
	f := &fakeProvider{mux: http.NewServeMux()}
	f.rejectToken.Store("")
	f.mux.HandleFunc("POST /authenticate", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "client" || r.Header.Get("x-api-secret") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.authCalls.Add(1)
		n := f.tokenSeq.Add(1)
		writeData(w, map[string]any{"access_token": "token-" + string(rune('0'+n)), "expires_in": 3600})
	})
	return f
}

func (f *fakeProvider) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if stale, _ := f.rejectToken.Load().(string); stale != "" && r.Header.Get("authorization") == stale {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"message":"token expired"}`))
			return
		}
		h(w, r)
	})
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": data})
}

type ClientSuite struct {
	suite.Suite
	provider *fakeProvider
	server   *httptest.Server
	client   *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.provider = newFakeProvider()
	s.server = httptest.NewServer(s.provider.mux)
	s.client = New(config.ProviderConfig{
		BaseURL:      s.server.URL,
		ClientID:     "client",
		ClientSecret: "secret",
		APIVersion:   "2.0",
		Timeout:      5 * time.Second,
	})
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) panHandler(body map[string]any) {
	s.provider.handle("POST /kyc/pan/verify", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, body)
	})
}

func (s *ClientSuite) TestVerifyPANMapsFacts() {
	s.panHandler(map[string]any{
		"status":                 "valid",
		"category":               "individual",
		"name_as_per_pan_match":  true,
		"date_of_birth_match":    false,
		"aadhaar_seeding_status": "Y",
		"remarks":                nil,
	})

	facts, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "abcde1234f", Name: "RAJESH KUMAR", DOB: "1990-01-01"})
	s.Require().NoError(err)
	s.Require().NotNil(facts.NameMatch)
	s.True(*facts.NameMatch)
	s.Require().NotNil(facts.DobMatch)
	s.False(*facts.DobMatch)
	s.Equal(decision.SeedingLinked, facts.Seeding)
	s.Equal("individual", facts.Category)
	s.Empty(facts.Remarks)
}

func (s *ClientSuite) TestVerifyPANLeavesAbsentFlagsNil() {
	s.panHandler(map[string]any{"status": "valid", "category": "individual", "aadhaar_seeding_status": "n"})

	facts, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
	s.Require().NoError(err)
	s.Nil(facts.NameMatch)
	s.Nil(facts.DobMatch)
}

func (s *ClientSuite) TestTokenIsFetchedOnceUnderConcurrency() {
	s.panHandler(map[string]any{"status": "valid", "category": "individual", "aadhaar_seeding_status": "y"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Equal(int32(1), s.provider.authCalls.Load())
}

func (s *ClientSuite) TestStaleTokenIsRefreshedOnce() {
	s.panHandler(map[string]any{"status": "valid", "category": "individual", "aadhaar_seeding_status": "y"})
	_, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
	s.Require().NoError(err)

	s.provider.rejectToken.Store("token-1")
	_, err = s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
	s.Require().NoError(err)
	s.Equal(int32(2), s.provider.authCalls.Load())
}

func (s *ClientSuite) TestPersistentAuthFailureIsNotRetriedTwice() {
	var calls atomic.Int32
	s.provider.handle("POST /kyc/pan/verify", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeExternalService))
	s.Equal(providers.ErrorAuthentication, providers.GetCategory(err))
	s.Equal(int32(2), calls.Load())
}

func (s *ClientSuite) TestServerErrorIsRetryableExternalFailure() {
	var calls atomic.Int32
	s.provider.handle("POST /kyc/pan/verify", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.client.VerifyPAN(context.Background(), ports.PANRequest{PAN: "ABCDE1234F"})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeExternalService))
	s.True(providers.IsRetryable(err))
	s.Equal(int32(1), calls.Load(), "business and outage failures are never retried")
}

func (s *ClientSuite) TestAadhaarOTPRoundTrip() {
	s.provider.handle("POST /kyc/aadhaar/okyc/otp", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{"reference_id": 4521987, "message": "OTP sent"})
	})
	s.provider.handle("POST /kyc/aadhaar/okyc/otp/verify", func(w http.ResponseWriter, r *http.Request) {
		var body otpVerifyRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		if body.OTP != "123456" {
			writeData(w, map[string]any{"status": "INVALID", "message": "Invalid OTP"})
			return
		}
		writeData(w, map[string]any{
			"status":        "VALID",
			"name":          "RAJESH KUMAR",
			"date_of_birth": "01-01-1990",
			"gender":        "M",
			"masked_number": "XXXX XXXX 9012",
		})
	})

	ref, err := s.client.GenerateAadhaarOTP(context.Background(), "123456789012")
	s.Require().NoError(err)
	s.Equal("4521987", ref)

	_, err = s.client.VerifyAadhaarOTP(context.Background(), ref, "000000")
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	identity, err := s.client.VerifyAadhaarOTP(context.Background(), ref, "123456")
	s.Require().NoError(err)
	s.Equal("RAJESH KUMAR", identity.Name)
	s.Equal("9012", identity.Last4)
}

func (s *ClientSuite) TestVerifyAccountStopsWithoutIMPS() {
	var accountCalls atomic.Int32
	s.provider.handle("GET /bank/{ifsc}", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{"IMPS": r.PathValue("ifsc") == "HDFC0000001", "BANK": "HDFC"})
	})
	s.provider.handle("GET /bank/{ifsc}/accounts/{account}/penniless-verify", func(w http.ResponseWriter, r *http.Request) {
		accountCalls.Add(1)
		writeData(w, map[string]any{"account_exists": true, "name_at_bank": " RAJESH K "})
	})

	facts, err := s.client.VerifyAccount(context.Background(), ports.BankAccountRequest{AccountNumber: "001122", IFSC: "sbin0000002"})
	s.Require().NoError(err)
	s.False(facts.IMPSSupported)
	s.Equal(int32(0), accountCalls.Load())

	facts, err = s.client.VerifyAccount(context.Background(), ports.BankAccountRequest{AccountNumber: "001122", IFSC: "hdfc0000001"})
	s.Require().NoError(err)
	s.True(facts.IMPSSupported)
	s.True(facts.AccountExists)
	s.Equal("RAJESH K", facts.NameAtBank)
}

func (s *ClientSuite) TestLookupCompanyParsesEndDates() {
	s.provider.handle("POST /mca/company/master-data/search", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]any{
			"company_master_data": map[string]any{"company_name": "ACME FINSERV PRIVATE LIMITED", "company_status": "Active"},
			"directors": []map[string]any{
				{"name": "MEERA IYER", "din": "01234567", "designation": "Director", "begin_date": "2019-04-01", "end_date": "-"},
				{"name": "OLD DIRECTOR", "din": "07654321", "designation": "Director", "begin_date": "2015-01-01", "end_date": "2018-06-30"},
			},
		})
	})

	facts, err := s.client.LookupCompany(context.Background(), "u65999mh2019ptc123456")
	s.Require().NoError(err)
	s.Equal("Active", facts.Status)
	s.Require().Len(facts.Directors, 2)
	s.Nil(facts.Directors[0].EndDate)
	s.Require().NotNil(facts.Directors[1].EndDate)
	s.Equal(2018, facts.Directors[1].EndDate.Year())
}

func (s *ClientSuite) TestNotFoundCompany() {
	s.provider.handle("POST /mca/company/master-data/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"company not found"}`))
	})

	_, err := s.client.LookupCompany(context.Background(), "X")
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func TestTokenCacheRefreshesBeforeExpiry(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var fetches int
	cache := newTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		fetches++
		return "tok", 10 * time.Minute, nil
	}, func() time.Time { return clock }, time.Second)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	clock = clock.Add(9*time.Minute + 30*time.Second)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "token inside the safety margin is refreshed")

	cache.Invalidate("other")
	_, _ = cache.Get(context.Background())
	assert.Equal(t, 2, fetches, "invalidating a token that is no longer cached is a no-op")
}

func TestTokenCacheRefreshOutlivesCancelledCaller(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	cache := newTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
			return "", 0, ctx.Err()
		}
		return "tok", 10 * time.Minute, nil
	}, time.Now, 5*time.Second)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Get(first)
		firstErr <- err
	}()
	<-started

	second := make(chan string, 1)
	go func() {
		tok, _ := cache.Get(context.Background())
		second <- tok
	}()

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)
	assert.Equal(t, "tok", <-second)
}
