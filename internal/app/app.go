package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-market/internal/config"
	"github.com/fsdevblog/groph-market/internal/notify"
	"github.com/fsdevblog/groph-market/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/session"
	"github.com/fsdevblog/groph-market/internal/transport/api"
	"github.com/fsdevblog/groph-market/internal/transport/payments"
	"github.com/fsdevblog/groph-market/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second

	paymentWorkers           = 5
	paymentLimitPerIteration = 50
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает зависимости и блокируется до сигнала завершения или ошибки http сервера.
// При штатной остановке возвращает context.Canceled.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":     a.Config.RunAddress,
		"migrationsDir":  a.Config.MigrationsDir,
		"superAdminID":   a.Config.SuperAdminID,
		"adminIDs":       a.Config.AdminIDs,
		"supportIDs":     a.Config.SupportIDs,
		"redis":          a.Config.RedisAddr != "",
		"kafkaBrokers":   a.Config.KafkaBrokers,
		"paymentGateway": a.Config.PaymentGatewayAddress,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.Register(unitOfWork); regErr != nil {
		return fmt.Errorf("app run: %s", regErr.Error())
	}

	notifier, closeNotifier, nErr := a.initNotifier()
	if nErr != nil {
		return fmt.Errorf("app run: %s", nErr.Error())
	}
	defer closeNotifier()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:               unitOfWork,
		Notifier:          notifier,
		Logger:            a.Logger,
		SuperAdminID:      a.Config.SuperAdminID,
		AdminIDs:          a.Config.AdminIDs,
		SupportIDs:        a.Config.SupportIDs,
		SellerCancelGrace: a.Config.SellerCancelGrace,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	routerArgs := api.RouterArgs{
		Logger:          a.Logger,
		AccountService:  services.Accounts,
		LedgerService:   services.Ledger,
		PaymentService:  services.Payments,
		ListingService:  services.Listings,
		OrderService:    services.Orders,
		ReviewService:   services.Reviews,
		SellerService:   services.Sellers,
		WithdrawService: services.Withdrawals,
		SupportService:  services.Support,
		Moderators: map[string]api.Moderator{
			api.QueueListings:    services.ListingQueue,
			api.QueueSellers:     services.SellerQueue,
			api.QueueWithdrawals: services.WithdrawQueue,
			api.QueueTickets:     services.TicketQueue,
		},
		JWTSecretKey:      []byte(a.Config.JWTSecret),
		ProviderSecretKey: []byte(a.Config.ProviderSecret),
	}
	if a.Config.RedisAddr != "" {
		rdb, rErr := session.Connect(notifyCtx, a.Config.RedisAddr, a.Config.RedisPassword)
		if rErr != nil {
			return fmt.Errorf("app run: %s", rErr.Error())
		}
		defer func() {
			_ = rdb.Close()
		}()
		routerArgs.Sessions = session.NewStore(rdb, a.Config.SessionTTL)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           api.New(routerArgs),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if a.Config.PaymentGatewayAddress != "" {
		processor := payments.New(services.Payments, a.Config.PaymentGatewayAddress, a.Logger).
			SetWorkers(paymentWorkers).
			SetLimitPerIteration(paymentLimitPerIteration).
			SetPollInterval(a.Config.PaymentPollInterval)
		g.Go(func() error {
			processor.Run(gCtx)
			return nil
		})
	} else {
		a.Logger.Warn("payment gateway address is not set, payment polling disabled")
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initNotifier Kafka, если заданы брокеры, плюс лог в любом случае.
func (a *App) initNotifier() (service.Notifier, func(), error) {
	logNotifier := notify.NewLogNotifier(a.Logger)
	if len(a.Config.KafkaBrokers) == 0 {
		return logNotifier, func() {}, nil
	}

	kafkaNotifier, err := notify.NewKafkaNotifier(a.Config.KafkaBrokers, a.Config.KafkaTopic)
	if err != nil {
		return nil, nil, fmt.Errorf("init notifier: %w", err)
	}
	closeFn := func() {
		if closeErr := kafkaNotifier.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close kafka producer")
		}
	}
	return notify.Multi{kafkaNotifier, logNotifier}, closeFn, nil
}
