//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/eligiorbautista/niyoghub-server/internal/config"
	"github.com/eligiorbautista/niyoghub-server/internal/gateway"
	"github.com/eligiorbautista/niyoghub-server/internal/handler"
	"github.com/eligiorbautista/niyoghub-server/internal/repository/mongo"
	"github.com/eligiorbautista/niyoghub-server/internal/repository/postgres"
	"github.com/eligiorbautista/niyoghub-server/internal/service"
	"github.com/eligiorbautista/niyoghub-server/internal/upload"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Infrastructure Providers
		wire.NewSet(
			provideContext,
			provideLogger,
			providePostgresDB,
			provideMongoDB,
			provideTokenManager,
		),
		// Repository & Storage Providers
		wire.NewSet(
			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			provideConversationRepository,
			wire.Bind(new(service.IConversationRepository), new(*mongo.ConversationRepository)),

			mongo.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*mongo.MessageRepository)),

			mongo.NewNotificationRepository,
			wire.Bind(new(service.INotificationRepository), new(*mongo.NotificationRepository)),

			provideUploadStore,
			wire.Bind(new(service.IAttachmentStore), new(*upload.Store)),
		),
		// Gateway Provider
		wire.NewSet(
			gateway.NewHub,
			wire.Bind(new(service.IRealtimeGateway), new(*gateway.Hub)),
		),
		// Service Providers
		wire.NewSet(
			service.NewAuthService,
			wire.Bind(new(service.IAuthService), new(*service.AuthService)),

			service.NewMessageService,
			wire.Bind(new(service.IMessageService), new(*service.MessageService)),

			service.NewNotificationService,
			wire.Bind(new(service.INotificationService), new(*service.NotificationService)),

			service.NewAnnouncementService,
			wire.Bind(new(service.IAnnouncementService), new(*service.AnnouncementService)),
		),
		// Handler Providers
		wire.NewSet(
			handler.NewAuthMiddleware,
			handler.NewAuthHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
			handler.NewAnnouncementHandler,
			handler.NewWebsocketHandler,
			handler.NewRouter,
		),
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}
