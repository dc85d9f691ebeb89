// Package engine orchestrates one request end to end: canonicalize, derive,
// compute outputs, score health, rank recommendations, and mint the share
// token. Transports stay thin; every operation they expose maps onto one
// method here.
package engine

import (
	"go.uber.org/zap"

	"finops-calc/core/curve"
	"finops-calc/core/health"
	"finops-calc/core/inputs"
	"finops-calc/core/model"
	"finops-calc/core/recommend"
	"finops-calc/core/sharestate"
	"finops-calc/core/types"
)

// seriesPoints is the fixed sample count for embedded chart series.
const seriesPoints = 300

// Engine evaluates calculator requests. It is stateless and safe for
// concurrent use; the logger is the only dependency.
type Engine struct {
	log *zap.Logger
}

// New builds an engine. A nil logger disables request logging.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// Options toggles optional sections of a calculate result.
type Options struct {
	IncludeHealth          bool
	IncludeRecommendations bool
	IncludeSeries          bool
	IncludeStateToken      bool
}

// DefaultOptions returns the standard toggles: everything but the series.
func DefaultOptions() Options {
	return Options{
		IncludeHealth:          true,
		IncludeRecommendations: true,
		IncludeSeries:          false,
		IncludeStateToken:      true,
	}
}

// NormalizeOptions resolves a raw options object against the defaults. Only
// real booleans override; anything else keeps the default.
func NormalizeOptions(raw map[string]interface{}) Options {
	opts := DefaultOptions()
	if raw == nil {
		return opts
	}
	if v, ok := raw["includeHealth"].(bool); ok {
		opts.IncludeHealth = v
	}
	if v, ok := raw["includeRecommendations"].(bool); ok {
		opts.IncludeRecommendations = v
	}
	if v, ok := raw["includeSeries"].(bool); ok {
		opts.IncludeSeries = v
	}
	if v, ok := raw["includeStateToken"].(bool); ok {
		opts.IncludeStateToken = v
	}
	return opts
}

// CalculateArgs is the raw calculate request as transports receive it.
// Untyped fields pass through the vocabulary filters during evaluation.
type CalculateArgs struct {
	Inputs       map[string]interface{} `json:"inputs"`
	Providers    interface{}            `json:"providers"`
	HiddenCurves interface{}            `json:"hiddenCurves"`
	Options      map[string]interface{} `json:"options"`
	UIIntent     interface{}            `json:"uiIntent"`
	UIMode       interface{}            `json:"uiMode"`
}

// Meta carries derivation context alongside the outputs.
type Meta struct {
	EffectiveARPU *float64       `json:"effectiveARPU"`
	ARPUMode      types.ARPUMode `json:"arpuMode"`
	Warnings      []string       `json:"warnings"`
}

// CalculateResult is the full calculate response.
type CalculateResult struct {
	NormalizedInputs types.CanonicalInput   `json:"normalizedInputs"`
	Model            types.EconomicModel    `json:"model"`
	Meta             Meta                   `json:"meta"`
	Outputs          types.Outputs          `json:"outputs"`
	Health           *types.HealthResult    `json:"health"`
	Recommendations  []types.Recommendation `json:"recommendations"`
	StateToken       *string                `json:"stateToken"`
	Series           []types.CurvePoint     `json:"series,omitempty"`
}

// Calculate runs the full pipeline for one request.
func (e *Engine) Calculate(args CalculateArgs) (*CalculateResult, error) {
	in := inputs.Canonicalize(args.Inputs)
	providers := inputs.NormalizeProviders(args.Providers)
	hiddenCurves := inputs.NormalizeHiddenCurves(args.HiddenCurves)
	opts := NormalizeOptions(args.Options)

	derived := model.Derive(in)
	outputs := ComputeOutputs(in, derived)

	e.log.Debug("model derived",
		zap.String("arpuMode", string(derived.ARPUMode)),
		zap.Strings("derivations", derived.Derivations))

	var healthResult *types.HealthResult
	if opts.IncludeHealth {
		h := health.Score(in, derived)
		healthResult = &h
	}

	recommendations := []types.Recommendation{}
	if opts.IncludeRecommendations {
		zone := types.ZoneAwaiting
		if healthResult != nil {
			zone = healthResult.ZoneKey
		}
		recommendations = recommend.Build(
			recommend.Filter{Zone: zone, Providers: providers, Category: types.CategoryAll},
			recommend.Strategic(zone, recommend.BuildContext(in, derived)),
		)
	}

	var stateToken *string
	if opts.IncludeStateToken {
		token, err := sharestate.Encode(types.ShareState{
			V:  types.ShareStateVersion,
			UI: inputs.NormalizeUIIntent(args.UIIntent),
			UM: inputs.NormalizeUIMode(args.UIMode),
			I:  sharestate.SerializeCanonical(in),
			TD: in.TechDomains,
			P:  providerStrings(providers),
			H:  curveStrings(hiddenCurves),
		})
		if err != nil {
			return nil, err
		}
		stateToken = &token
	}

	result := &CalculateResult{
		NormalizedInputs: in,
		Model:            derived.Model,
		Meta: Meta{
			EffectiveARPU: derived.EffectiveARPU,
			ARPUMode:      derived.ARPUMode,
			Warnings:      outputs.Normalization.Warnings,
		},
		Outputs:         outputs,
		Health:          healthResult,
		Recommendations: recommendations,
		StateToken:      stateToken,
	}

	if opts.IncludeSeries {
		result.Series = curve.BuildSeries(derived.Model, seriesPoints, outputs.Reliability.MonthlyLoad())
	}
	return result, nil
}

// Health scores a raw input payload.
func (e *Engine) Health(raw map[string]interface{}) types.HealthResult {
	in := inputs.Canonicalize(raw)
	return health.Score(in, model.Derive(in))
}

// RecommendArgs is the raw recommend request.
type RecommendArgs struct {
	ZoneKey   interface{}            `json:"zoneKey"`
	Providers interface{}            `json:"providers"`
	Category  interface{}            `json:"category"`
	Inputs    map[string]interface{} `json:"inputs"`
}

// Recommend returns the ranked advice list for a zone, provider selection,
// and category. When inputs are supplied, per-request strategic items are
// synthesized ahead of the catalog.
func (e *Engine) Recommend(args RecommendArgs) []types.Recommendation {
	zone := types.ZoneAwaiting
	if s, ok := args.ZoneKey.(string); ok {
		zone = types.Zone(s)
	}
	providers := inputs.NormalizeProviders(args.Providers)
	category := inputs.NormalizeCategory(args.Category)

	var strategic []types.Recommendation
	if args.Inputs != nil {
		in := inputs.Canonicalize(args.Inputs)
		strategic = recommend.Strategic(zone, recommend.BuildContext(in, model.Derive(in)))
	}

	return recommend.Build(
		recommend.Filter{Zone: zone, Providers: providers, Category: category},
		strategic,
	)
}

// EncodeStateArgs is the raw state-encode request. A full State payload wins
// over the assembled individual fields.
type EncodeStateArgs struct {
	State        map[string]interface{} `json:"state"`
	UIIntent     interface{}            `json:"uiIntent"`
	UIMode       interface{}            `json:"uiMode"`
	Inputs       map[string]interface{} `json:"inputs"`
	Providers    interface{}            `json:"providers"`
	HiddenCurves interface{}            `json:"hiddenCurves"`
}

// EncodeState normalizes a state payload and mints its token.
func (e *Engine) EncodeState(args EncodeStateArgs) (string, error) {
	var payload map[string]interface{}
	if args.State != nil {
		payload = args.State
	} else {
		var td interface{}
		if args.Inputs != nil {
			td = args.Inputs["techDomains"]
		}
		payload = map[string]interface{}{
			"ui": args.UIIntent,
			"um": args.UIMode,
			"i":  args.Inputs,
			"td": td,
			"p":  args.Providers,
			"h":  args.HiddenCurves,
		}
	}
	return sharestate.Encode(sharestate.NormalizePayload(payload))
}

// DecodeState reverses EncodeState. Any token holding a JSON object decodes.
func (e *Engine) DecodeState(token string) (map[string]interface{}, error) {
	return sharestate.Decode(token)
}

func providerStrings(providers []types.Provider) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = string(p)
	}
	return out
}

func curveStrings(curves []types.CurveKey) []string {
	out := make([]string, len(curves))
	for i, c := range curves {
		out[i] = string(c)
	}
	return out
}
