package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contributorkpi/config"
	"contributorkpi/database"
	"contributorkpi/handlers"
	"contributorkpi/logger"
	repository "contributorkpi/repositories"
	routes "contributorkpi/routes"
	services "contributorkpi/services"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		log.WithError(err).Fatal("Failed to ping MongoDB")
	}
	log.Info("Connected to MongoDB")

	checkIfReplicaSet(client, log)

	db := client.Database(cfg.Database)

	if err := database.CreateActivityIndexes(db); err != nil {
		log.WithError(err).Warn("Failed to create activity indexes")
	}

	activityRepo := repository.NewActivityRepository(db)
	kpiService := services.NewKPIService(activityRepo, log)
	kpiHandler := handlers.NewKPIHandler(kpiService, log, cfg.DefaultWindow)

	mux := routes.SetupKPIRoutes(kpiHandler, cfg.JWTSecret)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown server")
	}
}

func checkIfReplicaSet(client *mongo.Client, log *logrus.Logger) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result bson.M
	err := client.Database("admin").RunCommand(ctx, bson.M{"hello": 1}).Decode(&result)
	if err != nil {
		log.WithError(err).Warn("Error checking replica set")
		return false
	}

	if setName, exists := result["setName"]; exists {
		log.WithField("set_name", setName).Info("Part of replica set")
		return true
	}

	log.Info("Not part of a replica set")
	return false
}
