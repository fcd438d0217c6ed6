package main

import (
	"time"

	"tienda/internal/config"
	"tienda/internal/domain/model"
	"tienda/internal/handler"
	"tienda/internal/infra/db"
	infraRepo "tienda/internal/infra/repository"
	"tienda/internal/notification"
	"tienda/internal/server"
	"tienda/internal/usecase"
	auth "tienda/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(subject string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.WithError(err).Fatal("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.WithError(err).Fatal("automigrate failed")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//注文確認メール
	notifier := notification.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)

	//JWT issuer（アクセストークン15分）
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	orderUC := usecase.NewOrderUsecase(txManager, notifier, logger)
	loginUC := auth.NewLoginUsecase(
		cfg.AdminEmail,
		cfg.AdminPasswordHash,
		auth.NewBcryptPasswordVerifier(),
		issuer,
		&realClock{},
	)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	customerH := handler.NewCustomerHandler(customerUC)
	orderH := handler.NewOrderHandler(orderUC)
	authH := handler.NewAuthHandler(loginUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(logger, productH, customerH, orderH, authH)
	logger.WithField("addr", addr).Info("server starting")
	if err := server.Start(e, addr); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
