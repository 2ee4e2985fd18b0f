package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/onboarding/metrics"
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/store"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/otp"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/internal/verification/ports/mocks"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/circuit"
	"dsa-onboarding/pkg/platform/sentinel"
)

const (
	aadhaarNumber = "123456789012"
	validOTP      = "123456"
	applicantPAN  = "ABCPK1234F"
	companyCIN    = "U72900KA2015PTC082988"
)

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ids        *mocks.MockIDRegistry
	banks      *mocks.MockBankRegistry
	companies  *mocks.MockCompanyRegistry
	store      *store.InMemory
	auditStore *audit.MemoryStore
	service    *Service
	owner      id.UserID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ids = mocks.NewMockIDRegistry(s.ctrl)
	s.banks = mocks.NewMockBankRegistry(s.ctrl)
	s.companies = mocks.NewMockCompanyRegistry(s.ctrl)
	s.store = store.NewInMemory()
	s.auditStore = audit.NewMemoryStore()
	s.owner = id.UserID(uuid.New())
	s.service = s.newService()
}

func (s *ServiceSuite) newService(opts ...Option) *Service {
	guard := otp.NewGuard(otp.NewMemoryStore(), 10*time.Minute, otp.WithHashCost(bcrypt.MinCost))
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(audit.NewPublisher(s.auditStore)),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
	}
	return New(s.store, s.ids, s.banks, s.companies, guard, append(base, opts...)...)
}

func panFacts(name, dob bool, seeding decision.Seeding, category string) decision.PANFacts {
	return decision.PANFacts{
		NameMatch: decision.Bool(name),
		DobMatch:  decision.Bool(dob),
		Seeding:   seeding,
		Category:  category,
	}
}

func (s *ServiceSuite) create(entityType, subType, businessName string) *models.Application {
	app, err := s.service.Create(context.Background(), s.owner, CreateCommand{
		EntityType:     entityType,
		CompanySubType: subType,
		BusinessName:   businessName,
	})
	s.Require().NoError(err)
	return app
}

// verifyAadhaar walks one subject through the OTP phase with the registry
// returning name.
func (s *ServiceSuite) verifyAadhaar(ref, name string, initiate func(string) (string, error), verify func(AadhaarOTPCommand) error) {
	s.ids.EXPECT().GenerateAadhaarOTP(gomock.Any(), aadhaarNumber).Return(ref, nil)
	got, err := initiate(aadhaarNumber)
	s.Require().NoError(err)
	s.Require().Equal(ref, got)

	s.ids.EXPECT().VerifyAadhaarOTP(gomock.Any(), ref, validOTP).
		Return(ports.AadhaarIdentity{Name: name, DOB: "1985-04-12", Last4: "9012"}, nil)
	s.Require().NoError(verify(AadhaarOTPCommand{ReferenceID: ref, OTP: validOTP, AadhaarNumber: aadhaarNumber}))
}

func (s *ServiceSuite) applicantWithAadhaar(name string) *models.Application {
	ctx := context.Background()
	app := s.create("individual", "", "")
	s.verifyAadhaar("ref-"+app.ID.String(), name,
		func(n string) (string, error) { return s.service.InitiateAadhaar(ctx, app.ID, s.owner, n) },
		func(cmd AadhaarOTPCommand) error {
			_, err := s.service.VerifyAadhaar(ctx, app.ID, s.owner, cmd)
			return err
		})
	return app
}

func (s *ServiceSuite) reload(appID id.ApplicationID) *models.Application {
	o, err := s.service.Get(context.Background(), appID, s.owner)
	s.Require().NoError(err)
	return o.Application
}

func (s *ServiceSuite) auditActions(appID id.ApplicationID) []string {
	events, err := s.auditStore.ListByApplication(context.Background(), appID.String())
	s.Require().NoError(err)
	var actions []string
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	return actions
}

func (s *ServiceSuite) TestCreate() {
	ctx := context.Background()

	s.Run("individual starts at kyc", func() {
		app := s.create("individual", "ignored", "")
		s.Equal(models.StatusAt(models.StepKYC), app.Status)
		s.Empty(app.CompanySubType)
		s.Equal(int64(1), app.Version)
		s.Contains(s.auditActions(app.ID), string(audit.EventApplicationCreated))
	})

	s.Run("company starts at company verification", func() {
		app := s.create("company", "pvt_ltd", "")
		s.Equal(models.StatusAt(models.StepCompanyVerification), app.Status)
		s.Equal(id.SubTypePvtLtd, app.CompanySubType)
	})

	s.Run("company without sub-type is rejected", func() {
		_, err := s.service.Create(ctx, s.owner, CreateCommand{EntityType: "company"})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})

	s.Run("unknown entity type is rejected", func() {
		_, err := s.service.Create(ctx, s.owner, CreateCommand{EntityType: "trust"})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})

	s.Run("partnership needs a firm name", func() {
		_, err := s.service.Create(ctx, s.owner, CreateCommand{EntityType: "partnership"})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})

	s.Run("other owners cannot see the application", func() {
		app := s.create("individual", "", "")
		_, err := s.service.Get(ctx, app.ID, id.UserID(uuid.New()))
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestApplicantKYC() {
	ctx := context.Background()

	s.Run("PAN before Aadhaar is a validation error", func() {
		app := s.create("individual", "", "")
		_, err := s.service.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})

	s.Run("single name mismatch flags and completes kyc", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		s.ids.EXPECT().VerifyPAN(gomock.Any(), ports.PANRequest{PAN: applicantPAN, Name: "RAJESH KUMAR", DOB: "1985-04-12"}).
			Return(panFacts(false, true, decision.SeedingLinked, decision.PersonalCategory), nil)

		updated, err := s.service.VerifyPAN(ctx, app.ID, s.owner, "abcpk1234f")
		s.Require().NoError(err)
		s.True(updated.CompletedSteps[models.StepKYC])
		s.Equal(models.StatusAt(models.StepBank), updated.Status)
		s.Require().NotNil(updated.KYC.CrossValidation)
		s.Equal(decision.Flag, updated.KYC.CrossValidation.Decision)
		s.Len(updated.KYC.CrossValidation.Warnings, 1)
		s.Equal(models.ContextPANAadhaar, updated.KYC.CrossValidation.Context)

		_, err = s.service.InitiateAadhaar(ctx, app.ID, s.owner, aadhaarNumber)
		s.True(dErrors.Is(err, dErrors.CodeAlreadyCompleted))
	})

	s.Run("both mismatching blocks without persisting", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(panFacts(false, false, decision.SeedingLinked, decision.PersonalCategory), nil)

		_, err := s.service.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeBlockedTransition))
		s.Contains(err.Error(), "both name and DOB mismatch")

		stored := s.reload(app.ID)
		s.False(stored.CompletedSteps[models.StepKYC])
		s.Nil(stored.KYC.CrossValidation)
		s.Nil(stored.KYC.PAN)
		s.Contains(s.auditActions(app.ID), string(audit.EventVerificationDecided))
	})

	s.Run("missing registry facts never approve", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(decision.PANFacts{DobMatch: decision.Bool(true), Seeding: decision.SeedingLinked, Category: decision.PersonalCategory}, nil)

		_, err := s.service.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeMissingUpstreamFact))
		s.False(s.reload(app.ID).CompletedSteps[models.StepKYC])
	})
}

func (s *ServiceSuite) TestOTPReferenceBinding() {
	ctx := context.Background()

	s.Run("reference issued for another application fails", func() {
		first := s.create("individual", "", "")
		second := s.create("individual", "", "")
		s.ids.EXPECT().GenerateAadhaarOTP(gomock.Any(), aadhaarNumber).Return("ref-foreign", nil)
		ref, err := s.service.InitiateAadhaar(ctx, first.ID, s.owner, aadhaarNumber)
		s.Require().NoError(err)

		_, err = s.service.VerifyAadhaar(ctx, second.ID, s.owner, AadhaarOTPCommand{ReferenceID: ref, OTP: validOTP, AadhaarNumber: aadhaarNumber})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
		s.Nil(s.reload(second.ID).KYC.Aadhaar)
	})

	s.Run("reference issued for another Aadhaar number fails", func() {
		app := s.create("individual", "", "")
		s.ids.EXPECT().GenerateAadhaarOTP(gomock.Any(), aadhaarNumber).Return("ref-other-number", nil)
		ref, err := s.service.InitiateAadhaar(ctx, app.ID, s.owner, aadhaarNumber)
		s.Require().NoError(err)

		_, err = s.service.VerifyAadhaar(ctx, app.ID, s.owner, AadhaarOTPCommand{ReferenceID: ref, OTP: validOTP, AadhaarNumber: "999988887777"})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})

	s.Run("reference is single use", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		_, err := s.service.VerifyAadhaar(ctx, app.ID, s.owner, AadhaarOTPCommand{
			ReferenceID:   "ref-" + app.ID.String(),
			OTP:           validOTP,
			AadhaarNumber: aadhaarNumber,
		})
		s.True(dErrors.Is(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestProviderFailures() {
	ctx := context.Background()

	s.Run("coded outage is surfaced as retryable and nothing is saved", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		before := s.reload(app.ID).Version
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(decision.PANFacts{}, dErrors.New(dErrors.CodeExternalService, "registry unavailable"))

		_, err := s.service.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeExternalService))
		s.True(dErrors.Retryable(err))
		s.Equal(before, s.reload(app.ID).Version)
	})

	s.Run("uncoded failure becomes an external service error", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(decision.PANFacts{}, errors.New("connection reset by peer"))

		_, err := s.service.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeExternalService))
	})

	s.Run("open breaker fails fast without calling the provider", func() {
		app := s.applicantWithAadhaar("RAJESH KUMAR")
		svc := s.newService(WithProviderBreaker(circuit.New("test",
			circuit.WithFailureThreshold(1),
			circuit.WithCooldown(time.Hour),
		)))
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(decision.PANFacts{}, errors.New("connection refused")).Times(1)

		_, err := svc.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeExternalService))

		_, err = svc.VerifyPAN(ctx, app.ID, s.owner, applicantPAN)
		s.True(dErrors.Is(err, dErrors.CodeExternalService))
		s.Equal("verification provider unavailable", dErrors.MessageOf(err))
	})
}

func (s *ServiceSuite) completeApplicantKYC(name string) *models.Application {
	app := s.applicantWithAadhaar(name)
	s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
		Return(panFacts(true, true, decision.SeedingLinked, decision.PersonalCategory), nil)
	_, err := s.service.VerifyPAN(context.Background(), app.ID, s.owner, applicantPAN)
	s.Require().NoError(err)
	return app
}

func (s *ServiceSuite) TestBank() {
	ctx := context.Background()
	cmd := BankCommand{AccountNumber: "001234567890", IFSC: "HDFC0001234"}

	s.Run("branch without IMPS fails before the name match", func() {
		app := s.completeApplicantKYC("RAJESH KUMAR")
		s.banks.EXPECT().VerifyAccount(gomock.Any(), ports.BankAccountRequest{AccountNumber: cmd.AccountNumber, IFSC: cmd.IFSC}).
			Return(ports.BankFacts{AccountExists: true, NameAtBank: "RAJESH KUMAR", IMPSSupported: false}, nil)

		_, err := s.service.VerifyBank(ctx, app.ID, s.owner, cmd)
		s.True(dErrors.Is(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "IMPS")
		s.Nil(s.reload(app.ID).Bank)
	})

	s.Run("bank before kyc is not enterable", func() {
		app := s.create("individual", "", "")
		_, err := s.service.VerifyBank(ctx, app.ID, s.owner, cmd)
		s.True(dErrors.Is(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "not yet enterable")
	})

	s.Run("score between thresholds flags and completes", func() {
		flagging := s.newService(WithThresholds(decision.Thresholds{Block: 60, Approve: 101}))
		s.service = flagging
		app := s.completeApplicantKYC("RAJESH KUMAR")
		s.banks.EXPECT().VerifyAccount(gomock.Any(), gomock.Any()).
			Return(ports.BankFacts{AccountExists: true, NameAtBank: "RAJESH K", IMPSSupported: true}, nil)

		updated, err := flagging.VerifyBank(ctx, app.ID, s.owner, cmd)
		s.Require().NoError(err)
		s.True(updated.CompletedSteps[models.StepBank])
		s.Equal(decision.Flag, updated.Bank.CrossValidation.Decision)
		s.Equal([]string{"name match below auto-approval threshold"}, updated.Bank.CrossValidation.Warnings)
	})
}

type conflictingStore struct {
	Store
}

func (conflictingStore) Update(context.Context, *models.Application) error {
	return sentinel.ErrConflict
}

func (s *ServiceSuite) TestConcurrentWriteIsAConflict() {
	ctx := context.Background()
	app := s.create("individual", "", "")
	guard := otp.NewGuard(otp.NewMemoryStore(), time.Minute, otp.WithHashCost(bcrypt.MinCost))
	svc := New(conflictingStore{Store: s.store}, s.ids, s.banks, s.companies, guard)

	_, err := svc.AddReference(ctx, app.ID, s.owner, ReferenceInput{Name: "ASHA RAO", Mobile: "9000000001", Relationship: "colleague"})
	s.True(dErrors.Is(err, dErrors.CodeConflict))
	s.True(dErrors.Retryable(err))
}

func (s *ServiceSuite) TestEntityTypeChange() {
	ctx := context.Background()

	s.Run("allowed before progress", func() {
		app := s.create("individual", "", "")
		updated, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "company", CompanySubType: "llp"})
		s.Require().NoError(err)
		s.Equal(id.EntityCompany, updated.EntityType)
		s.Equal(models.StatusAt(models.StepCompanyVerification), updated.Status)
	})

	s.Run("stores the canonical company sub-type", func() {
		app := s.create("individual", "", "")
		updated, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "company", CompanySubType: " LLP "})
		s.Require().NoError(err)
		s.Equal(id.SubTypeLLP, updated.CompanySubType)
	})

	s.Run("partnership needs a business name", func() {
		app := s.create("individual", "", "")
		_, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "partnership"})
		s.True(dErrors.Is(err, dErrors.CodeValidation))

		stored, err := s.service.Get(ctx, app.ID, s.owner)
		s.Require().NoError(err)
		s.Equal(id.EntityIndividual, stored.Application.EntityType)

		updated, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "partnership", BusinessName: " SHAH TRADERS "})
		s.Require().NoError(err)
		s.Equal(id.EntityPartnership, updated.EntityType)
		s.Equal("SHAH TRADERS", updated.BusinessName)
	})

	s.Run("partnership keeps an existing business name", func() {
		app := s.create("proprietorship", "", "RAO STORES")
		updated, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "partnership"})
		s.Require().NoError(err)
		s.Equal("RAO STORES", updated.BusinessName)
	})

	s.Run("refused after progress", func() {
		app := s.completeApplicantKYC("RAJESH KUMAR")
		_, err := s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "proprietorship"})
		s.True(dErrors.Is(err, dErrors.CodeImmutableAfterProgress))
	})
}

func (s *ServiceSuite) TestReject() {
	ctx := context.Background()
	app := s.create("individual", "", "")

	_, err := s.service.Reject(ctx, app.ID, "ops-admin", "  ")
	s.True(dErrors.Is(err, dErrors.CodeValidation))

	rejected, err := s.service.Reject(ctx, app.ID, "ops-admin", "duplicate application")
	s.Require().NoError(err)
	s.Equal(models.StatusRejected, rejected.Status)

	_, err = s.service.AddReference(ctx, app.ID, s.owner, ReferenceInput{Name: "ASHA RAO", Mobile: "9000000001", Relationship: "colleague"})
	s.True(dErrors.Is(err, dErrors.CodeInvalidState))

	_, err = s.service.ChangeEntityType(ctx, app.ID, s.owner, ChangeEntityTypeCommand{EntityType: "proprietorship"})
	s.True(dErrors.Is(err, dErrors.CodeInvalidState))
	s.Contains(s.auditActions(app.ID), string(audit.EventApplicationRejected))
}

func (s *ServiceSuite) TestPartnerKYC() {
	ctx := context.Background()
	app := s.create("partnership", "", "SHAH TRADERS")

	partner, err := s.service.AddPartner(ctx, app.ID, s.owner, PartnerInput{Name: "AMIT SHAH", DOB: "1985-04-12", Mobile: "9000000001"})
	s.Require().NoError(err)
	other, err := s.service.AddPartner(ctx, app.ID, s.owner, PartnerInput{Name: "NEHA SHAH", DOB: "1987-01-30"})
	s.Require().NoError(err)
	s.Equal(2, other.Position)

	s.Run("standalone check uses entered details and does not complete KYC", func() {
		s.ids.EXPECT().VerifyPAN(gomock.Any(), ports.PANRequest{PAN: "AAAPS1111A", Name: "NEHA SHAH", DOB: "1987-01-30"}).
			Return(panFacts(true, true, decision.SeedingLinked, decision.PersonalCategory), nil)
		record, err := s.service.CheckPartnerPAN(ctx, app.ID, s.owner, other.ID, "AAAPS1111A")
		s.Require().NoError(err)
		s.Equal(decision.Approve, record.Decision)

		stored, _ := s.reload(app.ID).Partner(other.ID)
		s.False(stored.KYCCompleted)
		s.Equal("AAAPS1111A", stored.PANNumber)
	})

	s.Run("standalone check blocks a business PAN", func() {
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(panFacts(true, true, decision.SeedingLinked, "firm"), nil)
		_, err := s.service.CheckPartnerPAN(ctx, app.ID, s.owner, other.ID, "AAAFS1111A")
		s.True(dErrors.Is(err, dErrors.CodeBlockedTransition))
	})

	s.verifyAadhaar("ref-partner", "AMIT VIJAY SHAH",
		func(n string) (string, error) { return s.service.InitiatePartnerAadhaar(ctx, app.ID, s.owner, partner.ID, n) },
		func(cmd AadhaarOTPCommand) error {
			_, err := s.service.VerifyPartnerAadhaar(ctx, app.ID, s.owner, partner.ID, cmd)
			return err
		})

	s.Run("strict table blocks a name mismatch", func() {
		s.ids.EXPECT().VerifyPAN(gomock.Any(), ports.PANRequest{PAN: "ABCPS1234K", Name: "AMIT VIJAY SHAH", DOB: "1985-04-12"}).
			Return(panFacts(false, true, decision.SeedingLinked, decision.PersonalCategory), nil)
		_, err := s.service.VerifyPartnerPAN(ctx, app.ID, s.owner, partner.ID, "ABCPS1234K")
		s.True(dErrors.Is(err, dErrors.CodeBlockedTransition))
		s.Contains(err.Error(), "PAN name does not match Aadhaar name")
	})

	s.Run("strict table keeps other concerns as notes", func() {
		s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
			Return(panFacts(true, false, decision.SeedingNotLinked, decision.PersonalCategory), nil)
		updated, err := s.service.VerifyPartnerPAN(ctx, app.ID, s.owner, partner.ID, "ABCPS1234K")
		s.Require().NoError(err)

		p, ok := updated.Partner(partner.ID)
		s.Require().True(ok)
		s.True(p.KYCCompleted)
		s.Equal(models.KYCCompleted, p.KYCState())
		s.Equal(decision.Approve, p.KYC.CrossValidation.Decision)
		s.Len(p.KYC.CrossValidation.Notes, 2)
		s.Empty(p.KYC.CrossValidation.Warnings)
	})

	s.Run("initiating KYC again is refused", func() {
		_, err := s.service.InitiatePartnerAadhaar(ctx, app.ID, s.owner, partner.ID, aadhaarNumber)
		s.True(dErrors.Is(err, dErrors.CodeAlreadyCompleted))
	})

	s.Run("identity of a verified partner is frozen", func() {
		_, err := s.service.UpdatePartner(ctx, app.ID, s.owner, partner.ID, PartnerInput{Name: "SOMEONE ELSE", DOB: "1985-04-12"})
		s.True(dErrors.Is(err, dErrors.CodeInvalidState))

		updated, err := s.service.UpdatePartner(ctx, app.ID, s.owner, partner.ID, PartnerInput{Name: "AMIT SHAH", DOB: "1985-04-12", Mobile: "9000000009"})
		s.Require().NoError(err)
		s.Equal("9000000009", updated.Mobile)
	})

	s.Run("removing one partner keeps the other addressable", func() {
		extra, err := s.service.AddPartner(ctx, app.ID, s.owner, PartnerInput{Name: "RAVI SHAH"})
		s.Require().NoError(err)
		updated, err := s.service.RemovePartner(ctx, app.ID, s.owner, partner.ID)
		s.Require().NoError(err)
		p, ok := updated.Partner(extra.ID)
		s.Require().True(ok)
		s.Equal(2, p.Position)
	})
}

func (s *ServiceSuite) TestCompanyAndDirectors() {
	ctx := context.Background()
	ended := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)

	s.Run("inactive company blocks", func() {
		app := s.create("company", "pvt_ltd", "")
		s.companies.EXPECT().LookupCompany(gomock.Any(), companyCIN).
			Return(ports.CompanyFacts{Name: "ACME PRIVATE LIMITED", Status: "Strike Off"}, nil)
		_, err := s.service.VerifyCompany(ctx, app.ID, s.owner, companyCIN)
		s.True(dErrors.Is(err, dErrors.CodeBlockedTransition))
		s.Nil(s.reload(app.ID).Company)
	})

	app := s.create("company", "pvt_ltd", "")
	s.companies.EXPECT().LookupCompany(gomock.Any(), companyCIN).Return(ports.CompanyFacts{
		Name:   "ACME PRIVATE LIMITED",
		Status: "Active",
		Directors: []ports.CompanyDirector{
			{Name: "PRIYA NAIR", DIN: "00000001", Designation: "Director"},
			{Name: "ARJUN MEHTA", DIN: "00000002", Designation: "Director"},
			{Name: "OLD DIRECTOR", DIN: "00000003", Designation: "Director", EndDate: &ended},
		},
	}, nil)
	verified, err := s.service.VerifyCompany(ctx, app.ID, s.owner, companyCIN)
	s.Require().NoError(err)
	s.Require().Len(verified.Company.Directors, 2)
	s.Equal("ACME PRIVATE LIMITED", verified.BusinessName)
	s.Equal(models.StatusAt(models.StepDirectors), verified.Status)

	first, second := verified.Company.Directors[0], verified.Company.Directors[1]
	for i, d := range []models.Director{first, second} {
		did := d.ID
		s.verifyAadhaar("ref-director-"+string(rune('a'+i)), d.Name,
			func(n string) (string, error) { return s.service.InitiateDirectorAadhaar(ctx, app.ID, s.owner, did, n) },
			func(cmd AadhaarOTPCommand) error {
				_, err := s.service.VerifyDirectorAadhaar(ctx, app.ID, s.owner, did, cmd)
				return err
			})
	}

	s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.PANRequest) (decision.PANFacts, error) {
			if req.Name == "PRIYA NAIR" {
				return panFacts(true, false, decision.SeedingLinked, decision.PersonalCategory), nil
			}
			return panFacts(true, true, decision.SeedingLinked, "company"), nil
		}).Times(2)

	results, err := s.service.VerifyDirectorPANs(ctx, app.ID, s.owner, map[id.DirectorID]string{
		first.ID:  "ABCPN1234A",
		second.ID: "ABCPM1234B",
	})
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(decision.Flag, results[0].Outcome.Decision)
	s.Empty(results[0].Error)
	s.Equal(decision.Block, results[1].Outcome.Decision)
	s.Contains(results[1].Error, "PAN category must be individual")

	stored := s.reload(app.ID)
	d1, _ := stored.Director(first.ID)
	d2, _ := stored.Director(second.ID)
	s.True(d1.KYCCompleted)
	s.Len(d1.KYC.CrossValidation.Warnings, 1)
	s.False(d2.KYCCompleted)
	s.Equal(models.KYCAadhaarVerified, d2.KYCState())

	_, err = s.service.CompleteDirectors(ctx, app.ID, s.owner)
	s.True(dErrors.Is(err, dErrors.CodeValidation))
	s.Contains(err.Error(), "1 director(s) have not completed KYC")

	s.ids.EXPECT().VerifyPAN(gomock.Any(), gomock.Any()).
		Return(panFacts(true, true, decision.SeedingLinked, decision.PersonalCategory), nil)
	_, err = s.service.VerifyDirectorPAN(ctx, app.ID, s.owner, second.ID, "ABCPM1234B")
	s.Require().NoError(err)

	done, err := s.service.CompleteDirectors(ctx, app.ID, s.owner)
	s.Require().NoError(err)
	s.Equal(models.StatusAt(models.StepBank), done.Status)
}
