package usecase

import (
	"context"
	"time"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/interfaces"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model/auth"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/service/policy"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/service/signature"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/service/slack"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/utils/async"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// UseCases is the case lifecycle orchestrator. All case and indictment
// mutations go through it: it validates preconditions, checks role guards,
// serializes concurrent actions per case number, and keeps the linked
// indictment in sync with the case.
type UseCases struct {
	repo     interfaces.Repository
	policy   policy.Oracle
	signer   signature.Provider
	notifier slack.Service
	now      func() time.Time
	locker   *caseLocker
}

type Option func(*UseCases)

// WithPolicy replaces the built-in permission matrix
func WithPolicy(oracle policy.Oracle) Option {
	return func(uc *UseCases) {
		uc.policy = oracle
	}
}

// WithSignatureProvider replaces the default signature formatter
func WithSignatureProvider(p signature.Provider) Option {
	return func(uc *UseCases) {
		uc.signer = p
	}
}

// WithNotifier enables lifecycle notifications
func WithNotifier(svc slack.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = svc
	}
}

// WithClock replaces the time source, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// New creates the orchestrator
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		policy: policy.Default(),
		signer: signature.New(),
		now:    func() time.Time { return time.Now().UTC() },
		locker: newCaseLocker(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// authorize resolves the caller from the context and checks the role
// guard for the action. It runs before any read or write.
func (uc *UseCases) authorize(ctx context.Context, action types.Action) (*auth.Caller, error) {
	caller, err := auth.CallerFromContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(ErrForbidden, "caller identity missing", goerr.V(ActionKey, action))
	}

	if !uc.policy.Allowed(caller.Roles, action) {
		return nil, goerr.Wrap(ErrForbidden, "role guard rejected action",
			goerr.V(ActionKey, action),
			goerr.V("roles", caller.Roles))
	}

	return caller, nil
}

// notify dispatches a lifecycle notification without blocking the action.
// A notification failure is logged, never surfaced to the caller.
func (uc *UseCases) notify(ctx context.Context, c *model.Case, note model.Note) {
	if uc.notifier == nil {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.notifier.NotifyCaseUpdate(ctx, c, note); err != nil {
			return errutil.Handle(ctx, err, "failed to notify case update")
		}
		return nil
	})
}
