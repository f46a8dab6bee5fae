package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/semaphore"

	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
)

var _ ports.StoreRunner = (*ConnRunner)(nil)

// acquireFunc toma una conexión y devuelve la función que la libera.
type acquireFunc func(ctx context.Context) (Querier, func(), error)

// RunnerOptions límites de la adquisición de conexiones.
type RunnerOptions struct {
	MaxConns       int           // igual a pool MaxConns
	MaxWaiting     int           // peticiones que pueden hacer cola además de MaxConns
	AcquireTimeout time.Duration // 0 = sin límite
	QueryTimeout   time.Duration // 0 = sin límite
}

// ConnRunner ejecuta callbacks con una conexión del pool y repos atados a ella.
// Admite como máximo MaxConns+MaxWaiting ejecuciones simultáneas; el resto falla
// de inmediato con domain.ErrUnavailable en lugar de esperar sin límite.
type ConnRunner struct {
	acquire        acquireFunc
	admission      *semaphore.Weighted
	acquireTimeout time.Duration
	queryTimeout   time.Duration
}

// NewConnRunner construye el runner sobre el pool.
func NewConnRunner(pool *pgxpool.Pool, opts RunnerOptions) *ConnRunner {
	return newConnRunner(func(ctx context.Context) (Querier, func(), error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn.Release, nil
	}, opts)
}

func newConnRunner(acquire acquireFunc, opts RunnerOptions) *ConnRunner {
	capacity := opts.MaxConns + opts.MaxWaiting
	if capacity <= 0 {
		capacity = 1
	}
	return &ConnRunner{
		acquire:        acquire,
		admission:      semaphore.NewWeighted(int64(capacity)),
		acquireTimeout: opts.AcquireTimeout,
		queryTimeout:   opts.QueryTimeout,
	}
}

// Run toma una conexión, ejecuta fn con repos atados a ella y la libera en toda salida.
func (r *ConnRunner) Run(ctx context.Context, fn ports.StoreFunc) error {
	if !r.admission.TryAcquire(1) {
		return fmt.Errorf("%w: demasiadas peticiones esperando conexión", domain.ErrUnavailable)
	}
	defer r.admission.Release(1)

	acquireCtx, cancelAcquire := withOptionalTimeout(ctx, r.acquireTimeout)
	q, release, err := r.acquire(acquireCtx)
	cancelAcquire()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: tiempo de espera de conexión agotado", domain.ErrUnavailable)
		}
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer release()

	runCtx, cancelRun := withOptionalTimeout(ctx, r.queryTimeout)
	defer cancelRun()

	return fn(runCtx, NewUserRepository(q), NewPetRepository(q))
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
