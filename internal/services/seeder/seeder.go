package seeder

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/Jidetireni/invoice-dashboard/internal/dto"
	"github.com/Jidetireni/invoice-dashboard/internal/helpers"
	"github.com/Jidetireni/invoice-dashboard/pkg/database"
	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Step string

const (
	StepValidate  Step = "validate"
	StepConnect   Step = "connect"
	StepUsers     Step = "users"
	StepCustomers Step = "customers"
	StepInvoices  Step = "invoices"
	StepRevenue   Step = "revenue"
)

type PasswordHasher interface {
	HashPassword(plaintext string, cost int) (string, error)
}

// Connector opens the store for a single invocation. The cleanup it returns
// releases the connection.
type Connector func(ctx context.Context) (*database.PostgresDB, func(), error)

type Options struct {
	// Cost is the bcrypt work factor.
	Cost int
	// Concurrency bounds in-flight inserts per step. Zero or less is unbounded.
	Concurrency int
}

type Seeder struct {
	Connect Connector
	Hasher  PasswordHasher
	Dataset dto.Dataset
	Logger  *logger.Logger
	Options Options

	validate *validator.Validate
}

type Result struct {
	Success bool
	Steps   []dto.StepSummary
}

func (r *Result) Step(step Step) (dto.StepSummary, bool) {
	return lo.Find(r.Steps, func(s dto.StepSummary) bool {
		return s.Step == string(step)
	})
}

func (r *Result) Inserted() int64 {
	return lo.SumBy(r.Steps, func(s dto.StepSummary) int64 {
		return s.Inserted
	})
}

func New(connect Connector, hasher PasswordHasher, dataset dto.Dataset, log *logger.Logger, opts Options) *Seeder {
	if opts.Cost == 0 {
		opts.Cost = helpers.DefaultPasswordCost
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Seeder{
		Connect:  connect,
		Hasher:   hasher,
		Dataset:  dataset,
		Logger:   log,
		Options:  opts,
		validate: validator.New(),
	}
}

type step struct {
	name   Step
	ensure func(ctx context.Context) error
	rows   int
	insert func(ctx context.Context, i int) (int64, error)
}

// Seed creates the tables if needed and inserts the dataset, skipping rows
// whose key already exists. Steps run in dependency order; the first failing
// step aborts the rest.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	s.Logger.Info().Msg("starting database seeding")

	if err := s.validate.Struct(s.Dataset); err != nil {
		return nil, s.fail(&StepError{Step: StepValidate, Kind: KindInvalidData, Err: err})
	}

	pg, cleanup, err := s.Connect(ctx)
	if err != nil {
		return nil, s.fail(&StepError{Step: StepConnect, Kind: KindConnectivity, Err: err})
	}
	if cleanup != nil {
		defer cleanup()
	}

	result := &Result{}
	for _, st := range s.steps(pg) {
		summary, stepErr := s.run(ctx, st)
		if stepErr != nil {
			return nil, s.fail(stepErr)
		}

		s.Logger.Info().
			Str("step", summary.Step).
			Int("processed", summary.Processed).
			Int64("inserted", summary.Inserted).
			Msgf("seeded %d %s", summary.Processed, summary.Step)
		result.Steps = append(result.Steps, summary)
	}

	result.Success = true
	s.Logger.Info().Int64("inserted", result.Inserted()).Msg("database seeded successfully")
	return result, nil
}

func (s *Seeder) fail(err *StepError) *StepError {
	s.Logger.Error().
		Err(err.Err).
		Str("step", string(err.Step)).
		Str("kind", string(err.Kind)).
		Msgf("error seeding %s", err.Step)
	return err
}

func (s *Seeder) run(ctx context.Context, st step) (dto.StepSummary, *StepError) {
	if err := st.ensure(ctx); err != nil {
		return dto.StepSummary{}, newStepError(st.name, KindSchema, fmt.Errorf("ensure table: %w", err))
	}

	var inserted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())
	for i := range st.rows {
		g.Go(func() error {
			n, err := st.insert(gctx, i)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			inserted.Add(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dto.StepSummary{}, newStepError(st.name, KindUnknown, err)
	}

	return dto.StepSummary{
		Step:      string(st.name),
		Processed: st.rows,
		Inserted:  inserted.Load(),
	}, nil
}

func (s *Seeder) limit() int {
	if s.Options.Concurrency <= 0 {
		return -1
	}
	return s.Options.Concurrency
}
