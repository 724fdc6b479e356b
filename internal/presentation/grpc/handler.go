package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/application/usecase"
	"github.com/tierbank/depositcalc/internal/domain/model"
	"github.com/tierbank/depositcalc/internal/domain/port"
	"github.com/tierbank/depositcalc/internal/platform/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// statusFromError maps application errors onto gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidRange),
		errors.Is(err, model.ErrInvalidTier),
		errors.Is(err, usecase.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, port.ErrNotFound):
		return status.Error(codes.NotFound, "calculation not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// Compile-time assertion that CalculatorHandler implements CalculatorServiceServer.
var _ CalculatorServiceServer = (*CalculatorHandler)(nil)

// CalculatorHandler implements the gRPC CalculatorServiceServer interface.
type CalculatorHandler struct {
	UnimplementedCalculatorServiceServer
	runCalculation    *usecase.RunCalculationUseCase
	validateTiers     *usecase.ValidateTiersUseCase
	getCalculation    *usecase.GetCalculationUseCase
	listHistory       *usecase.ListHistoryUseCase
	replayCalculation *usecase.ReplayCalculationUseCase
	savePreset        *usecase.SavePresetUseCase
	listPresets       *usecase.ListPresetsUseCase
}

func NewCalculatorHandler(
	runCalculation *usecase.RunCalculationUseCase,
	validateTiers *usecase.ValidateTiersUseCase,
	getCalculation *usecase.GetCalculationUseCase,
	listHistory *usecase.ListHistoryUseCase,
	replayCalculation *usecase.ReplayCalculationUseCase,
	savePreset *usecase.SavePresetUseCase,
	listPresets *usecase.ListPresetsUseCase,
) *CalculatorHandler {
	return &CalculatorHandler{
		runCalculation:    runCalculation,
		validateTiers:     validateTiers,
		getCalculation:    getCalculation,
		listHistory:       listHistory,
		replayCalculation: replayCalculation,
		savePreset:        savePreset,
		listPresets:       listPresets,
	}
}

// Proto-aligned request/response message types.

type TierMsg struct {
	Min  string
	Max  string
	Rate string
}

type ParametersMsg struct {
	Principal    string
	StartDate    string
	EndDate      string
	Tiers        []*TierMsg
	InterestType string
	ApplyCadence string
}

type LedgerEntryMsg struct {
	Period             string
	PeriodStart        string
	PeriodEnd          string
	DayCount           int32
	Balance            string
	Interest           string
	CumulativeInterest string
	AccruedInterest    string
	Applied            bool
}

type TierResultMsg struct {
	Min      string
	Max      string
	Rate     string
	Amount   string
	Interest string
}

type DailyEntryMsg struct {
	Date               string
	Interest           string
	CumulativeInterest string
}

type CalculationMsg struct {
	ID              string
	Principal       string
	StartDate       string
	EndDate         string
	InterestType    string
	ApplyCadence    string
	TotalInterest   string
	FinalAmount     string
	AccruedInterest string
	TotalDays       int32
	Breakdown       []*LedgerEntryMsg
	TierResults     []*TierResultMsg
	DailyBreakdown  []*DailyEntryMsg
	CreatedAt       *timestamppb.Timestamp
}

type CalculationSummaryMsg struct {
	ID            string
	Principal     string
	StartDate     string
	EndDate       string
	InterestType  string
	ApplyCadence  string
	TotalInterest string
	FinalAmount   string
	TotalDays     int32
	CreatedAt     *timestamppb.Timestamp
}

type PresetMsg struct {
	Name       string
	Parameters *ParametersMsg
	CreatedAt  *timestamppb.Timestamp
}

type CalculateRequest struct {
	Principal             string
	StartDate             string
	EndDate               string
	Tiers                 []*TierMsg
	InterestType          string
	ApplyCadence          string
	IncludeDailyBreakdown bool
}

type CalculateResponse struct {
	Calculation *CalculationMsg
}

type ValidateTiersRequest struct {
	Tiers []*TierMsg
}

type ValidateTiersResponse struct {
	Valid   bool
	Message string
}

type GetCalculationRequest struct {
	ID                    string
	IncludeDailyBreakdown bool
}

type GetCalculationResponse struct {
	Calculation *CalculationMsg
}

type ListHistoryRequest struct {
	Limit  int32
	Offset int32
}

type ListHistoryResponse struct {
	Calculations []*CalculationSummaryMsg
}

type ReplayCalculationRequest struct {
	ID                    string
	IncludeDailyBreakdown bool
}

type ReplayCalculationResponse struct {
	Calculation *CalculationMsg
}

type SavePresetRequest struct {
	Name       string
	Parameters *ParametersMsg
}

type SavePresetResponse struct {
	Preset *PresetMsg
}

type ListPresetsRequest struct{}

type ListPresetsResponse struct {
	Presets []*PresetMsg
}

// Calculate runs a tiered interest calculation and persists the result.
func (h *CalculatorHandler) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.runCalculation.Execute(ctx, dto.CalculateRequest{
		Principal:             req.Principal,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		Tiers:                 tiersFromMsgs(req.Tiers),
		InterestType:          req.InterestType,
		ApplyCadence:          req.ApplyCadence,
		IncludeDailyBreakdown: req.IncludeDailyBreakdown,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &CalculateResponse{Calculation: toCalculationMsg(result)}, nil
}

// ValidateTiers checks a tier set without running a calculation.
func (h *CalculatorHandler) ValidateTiers(ctx context.Context, req *ValidateTiersRequest) (*ValidateTiersResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.validateTiers.Execute(tiersFromMsgs(req.Tiers)); err != nil {
		if errors.Is(err, model.ErrInvalidTier) {
			return &ValidateTiersResponse{Valid: false, Message: err.Error()}, nil
		}
		return nil, statusFromError(err)
	}
	return &ValidateTiersResponse{Valid: true}, nil
}

// GetCalculation retrieves a stored calculation by ID.
func (h *CalculatorHandler) GetCalculation(ctx context.Context, req *GetCalculationRequest) (*GetCalculationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getCalculation.Execute(ctx, req.ID, req.IncludeDailyBreakdown)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetCalculationResponse{Calculation: toCalculationMsg(result)}, nil
}

// ListHistory pages through stored calculations.
func (h *CalculatorHandler) ListHistory(ctx context.Context, req *ListHistoryRequest) (*ListHistoryResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	summaries, err := h.listHistory.Execute(ctx, dto.ListHistoryRequest{
		Limit:  int(req.Limit),
		Offset: int(req.Offset),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	msgs := make([]*CalculationSummaryMsg, 0, len(summaries))
	for _, summary := range summaries {
		msgs = append(msgs, &CalculationSummaryMsg{
			ID:            summary.ID,
			Principal:     summary.Principal,
			StartDate:     summary.StartDate,
			EndDate:       summary.EndDate,
			InterestType:  summary.InterestType,
			ApplyCadence:  summary.ApplyCadence,
			TotalInterest: summary.TotalInterest,
			FinalAmount:   summary.FinalAmount,
			TotalDays:     int32(summary.TotalDays), //nolint:gosec
			CreatedAt:     timestamppb.New(summary.CreatedAt),
		})
	}
	return &ListHistoryResponse{Calculations: msgs}, nil
}

// ReplayCalculation re-runs a stored calculation's parameters.
func (h *CalculatorHandler) ReplayCalculation(ctx context.Context, req *ReplayCalculationRequest) (*ReplayCalculationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.replayCalculation.Execute(ctx, req.ID, req.IncludeDailyBreakdown)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &ReplayCalculationResponse{Calculation: toCalculationMsg(result)}, nil
}

// SavePreset stores a named parameter set.
func (h *CalculatorHandler) SavePreset(ctx context.Context, req *SavePresetRequest) (*SavePresetResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil || req.Parameters == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.savePreset.Execute(ctx, dto.SavePresetRequest{
		Name: req.Name,
		Parameters: dto.CalculateRequest{
			Principal:    req.Parameters.Principal,
			StartDate:    req.Parameters.StartDate,
			EndDate:      req.Parameters.EndDate,
			Tiers:        tiersFromMsgs(req.Parameters.Tiers),
			InterestType: req.Parameters.InterestType,
			ApplyCadence: req.Parameters.ApplyCadence,
		},
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &SavePresetResponse{Preset: toPresetMsg(result)}, nil
}

// ListPresets returns all stored presets.
func (h *CalculatorHandler) ListPresets(ctx context.Context, req *ListPresetsRequest) (*ListPresetsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	presets, err := h.listPresets.Execute(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	msgs := make([]*PresetMsg, 0, len(presets))
	for _, preset := range presets {
		msgs = append(msgs, toPresetMsg(preset))
	}
	return &ListPresetsResponse{Presets: msgs}, nil
}

func tiersFromMsgs(msgs []*TierMsg) []dto.TierInput {
	tiers := make([]dto.TierInput, 0, len(msgs))
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		tiers = append(tiers, dto.TierInput{Min: msg.Min, Max: msg.Max, Rate: msg.Rate})
	}
	return tiers
}

func toCalculationMsg(r dto.CalculationResponse) *CalculationMsg {
	breakdown := make([]*LedgerEntryMsg, 0, len(r.Breakdown))
	for _, entry := range r.Breakdown {
		breakdown = append(breakdown, &LedgerEntryMsg{
			Period:             entry.Period,
			PeriodStart:        entry.PeriodStart,
			PeriodEnd:          entry.PeriodEnd,
			DayCount:           int32(entry.DayCount), //nolint:gosec
			Balance:            entry.Balance,
			Interest:           entry.Interest,
			CumulativeInterest: entry.CumulativeInterest,
			AccruedInterest:    entry.AccruedInterest,
			Applied:            entry.Applied,
		})
	}

	tierResults := make([]*TierResultMsg, 0, len(r.TierResults))
	for _, tr := range r.TierResults {
		tierResults = append(tierResults, &TierResultMsg{
			Min:      tr.Min,
			Max:      tr.Max,
			Rate:     tr.Rate,
			Amount:   tr.Amount,
			Interest: tr.Interest,
		})
	}

	var daily []*DailyEntryMsg
	if len(r.DailyBreakdown) > 0 {
		daily = make([]*DailyEntryMsg, 0, len(r.DailyBreakdown))
		for _, entry := range r.DailyBreakdown {
			daily = append(daily, &DailyEntryMsg{
				Date:               entry.Date,
				Interest:           entry.Interest,
				CumulativeInterest: entry.CumulativeInterest,
			})
		}
	}

	return &CalculationMsg{
		ID:              r.ID,
		Principal:       r.Principal,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		InterestType:    r.InterestType,
		ApplyCadence:    r.ApplyCadence,
		TotalInterest:   r.TotalInterest,
		FinalAmount:     r.FinalAmount,
		AccruedInterest: r.AccruedInterest,
		TotalDays:       int32(r.TotalDays), //nolint:gosec
		Breakdown:       breakdown,
		TierResults:     tierResults,
		DailyBreakdown:  daily,
		CreatedAt:       timestamppb.New(r.CreatedAt),
	}
}

func toPresetMsg(r dto.PresetResponse) *PresetMsg {
	tiers := make([]*TierMsg, 0, len(r.Parameters.Tiers))
	for _, tier := range r.Parameters.Tiers {
		tiers = append(tiers, &TierMsg{Min: tier.Min, Max: tier.Max, Rate: tier.Rate})
	}

	return &PresetMsg{
		Name: r.Name,
		Parameters: &ParametersMsg{
			Principal:    r.Parameters.Principal,
			StartDate:    r.Parameters.StartDate,
			EndDate:      r.Parameters.EndDate,
			Tiers:        tiers,
			InterestType: r.Parameters.InterestType,
			ApplyCadence: r.Parameters.ApplyCadence,
		},
		CreatedAt: timestamppb.New(r.CreatedAt),
	}
}
