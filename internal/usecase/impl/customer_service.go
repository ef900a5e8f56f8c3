package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
	"crm/internal/domain/importer"
	"crm/internal/domain/loyalty"
	"crm/internal/domain/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

type customerService struct {
	store  usecase.StateStore
	runner *effectRunner
	clock  service.Clock
	ids    service.IDGenerator
	qrcode service.QRCodeService
	texts  *i18n.Texts
	logger *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(
	store usecase.StateStore,
	clock service.Clock,
	ids service.IDGenerator,
	qrcode service.QRCodeService,
	texts *i18n.Texts,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		store:  store,
		runner: &effectRunner{clock: clock, ids: ids},
		clock:  clock,
		ids:    ids,
		qrcode: qrcode,
		texts:  texts,
		logger: logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns customers matching the filter
func (srv *customerService) List(_ context.Context, filter usecase.CustomerFilter) ([]entity.Customer, error) {
	state := srv.store.Snapshot()
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]entity.Customer, 0, len(state.Customers))
	for _, c := range state.Customers {
		if filter.Classification != "" && c.Classification != filter.Classification {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(c.Phone, query) && !strings.EqualFold(c.ID, query) {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

// Get returns one customer
func (srv *customerService) Get(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := srv.store.Snapshot().FindCustomer(id)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return &c, nil
}

// Create registers a customer by hand
func (srv *customerService) Create(ctx context.Context, actor entity.Actor, in usecase.NewCustomer) (*usecase.Result[entity.Customer], error) {
	name, phone := strings.TrimSpace(in.Name), strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and phone are required")
	}

	var created entity.Customer
	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		for _, c := range state.Customers {
			if c.Phone == phone || (in.ID != "" && c.ID == in.ID) {
				return domainerrors.ErrCustomerAlreadyExists
			}
		}

		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = importer.NextCustomerID(state.Customers)
		}
		customerType := in.Type
		if customerType == "" {
			customerType = entity.CustomerTypeNormal
		}

		now := srv.clock.Now()
		created = entity.Customer{
			ID:             id,
			Name:           name,
			Phone:          phone,
			Email:          in.Email,
			JoinDate:       now,
			Type:           customerType,
			Governorate:    in.Governorate,
			StreetAddress:  in.StreetAddress,
			Classification: loyalty.Classify(0, state.SystemSettings.Classification),
			Source:         in.Source,
			Log:            []entity.CustomerLogEntry{},
			Impressions:    []entity.CustomerImpression{},
			LastModified:   now,
		}
		state.PutCustomer(created)
		srv.runner.audit(state, actor, srv.texts.T(i18n.AuditCustomerCreated, name))

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Customer created", slog.String("customer_id", created.ID))

	return &usecase.Result[entity.Customer]{Value: created}, nil
}

// updateCustomer runs a ledger operation on one customer inside a mutation.
func (srv *customerService) updateCustomer(
	ctx context.Context,
	actor entity.Actor,
	id string,
	op func(state *entity.AppState, c entity.Customer) (entity.Customer, string, error),
) (*usecase.Result[entity.Customer], error) {
	var updated entity.Customer

	_, err := srv.store.Mutate(ctx, func(state *entity.AppState) error {
		current, ok := state.FindCustomer(id)
		if !ok {
			return domainerrors.ErrCustomerNotFound
		}

		next, details, err := op(state, current)
		if err != nil {
			return err
		}
		state.PutCustomer(next)
		srv.runner.audit(state, actor, details)
		updated = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Ledger operation rejected", slog.Any("error", err), slog.String("customer_id", id))

		return nil, errors.WithStack(err)
	}
	srv.log(ctx).Info("Ledger updated", slog.String("customer_id", id), slog.Int("points", updated.Points))

	return &usecase.Result[entity.Customer]{Value: updated}, nil
}

// GrantPoints credits points
func (srv *customerService) GrantPoints(ctx context.Context, actor entity.Actor, id string, amount int, reason string) (*usecase.Result[entity.Customer], error) {
	return srv.updateCustomer(ctx, actor, id, func(_ *entity.AppState, c entity.Customer) (entity.Customer, string, error) {
		next, err := loyalty.Grant(c, amount, srv.clock.Now())

		return next, srv.texts.T(i18n.AuditPointsGranted, strconv.Itoa(amount), c.Name, reason), err
	})
}

// DeductPoints debits points
func (srv *customerService) DeductPoints(ctx context.Context, actor entity.Actor, id string, amount int, reason string) (*usecase.Result[entity.Customer], error) {
	return srv.updateCustomer(ctx, actor, id, func(_ *entity.AppState, c entity.Customer) (entity.Customer, string, error) {
		next, err := loyalty.Deduct(c, amount, srv.clock.Now())

		return next, srv.texts.T(i18n.AuditPointsDeducted, strconv.Itoa(amount), c.Name, reason), err
	})
}

// AddLegacyBalance converts a paper-era currency balance into points
func (srv *customerService) AddLegacyBalance(ctx context.Context, actor entity.Actor, id string, amount float64, note string) (*usecase.Result[entity.Customer], error) {
	return srv.updateCustomer(ctx, actor, id, func(state *entity.AppState, c entity.Customer) (entity.Customer, string, error) {
		next, points, err := loyalty.AddLegacyBalance(c, amount, state.SystemSettings, srv.clock.Now())

		return next, srv.texts.T(i18n.AuditLegacyBalance, loyalty.FormatAmount(amount), c.Name, strconv.Itoa(points), note), err
	})
}

// GrantVideoReward credits the review-video reward
func (srv *customerService) GrantVideoReward(ctx context.Context, actor entity.Actor, id string) (*usecase.Result[entity.Customer], error) {
	return srv.updateCustomer(ctx, actor, id, func(_ *entity.AppState, c entity.Customer) (entity.Customer, string, error) {
		next, err := loyalty.GrantVideoReward(c, srv.clock.Now())

		return next, srv.texts.T(i18n.AuditVideoReward, strconv.Itoa(loyalty.VideoRewardPoints), c.Name), err
	})
}

// RedeemVoucher converts points into a discount voucher
func (srv *customerService) RedeemVoucher(ctx context.Context, actor entity.Actor, id string, points int) (*usecase.Result[entity.Voucher], error) {
	var voucher entity.Voucher

	_, err := srv.updateCustomer(ctx, actor, id, func(state *entity.AppState, c entity.Customer) (entity.Customer, string, error) {
		next, v, err := loyalty.Redeem(c, loyalty.Redemption{
			Points:     points,
			PointValue: state.SystemSettings.PointValue,
			Code:       srv.ids.New(loyalty.VoucherPrefix),
			Now:        srv.clock.Now(),
			Texts:      srv.texts,
		})
		voucher = v

		return next, srv.texts.T(i18n.AuditVoucherIssued, v.Code, c.Name, loyalty.FormatAmount(v.Amount)), err
	})
	if err != nil {
		return nil, err
	}

	return &usecase.Result[entity.Voucher]{Value: voucher}, nil
}

// VoucherQR renders the QR code of an issued voucher
func (srv *customerService) VoucherQR(_ context.Context, code string) ([]byte, error) {
	state := srv.store.Snapshot()

	for _, c := range state.Customers {
		if _, ok := loyalty.FindVoucher(c, code, state.SystemSettings.PointValue); ok {
			png, err := srv.qrcode.GenerateVoucherQR(code)
			if err != nil {
				return nil, errors.Wrap(err, "failed to render voucher QR")
			}

			return png, nil
		}
	}

	return nil, domainerrors.ErrVoucherNotFound
}
