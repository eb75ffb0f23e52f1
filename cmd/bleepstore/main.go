// Package main is the entry point for the s3kit S3-compatible object storage server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bleepstore/s3kit/internal/access"
	"github.com/bleepstore/s3kit/internal/config"
	"github.com/bleepstore/s3kit/internal/gateway"
	"github.com/bleepstore/s3kit/internal/metadata"
	"github.com/bleepstore/s3kit/internal/ops"
	"github.com/bleepstore/s3kit/internal/registry"
	"github.com/bleepstore/s3kit/internal/s3adapter"
	"github.com/bleepstore/s3kit/internal/sigv2"
	"github.com/bleepstore/s3kit/internal/sigv4"
	"github.com/bleepstore/s3kit/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	port := flag.Int("port", 0, "override listening port (default: from config or 9000)")
	host := flag.String("host", "", "override listening host (default: from config or 0.0.0.0)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Command-line flags override config file values.
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	// Crash-only design: every startup is recovery.
	// No special recovery mode. Steps that would normally be "recovery" run on
	// every boot:
	// - SQLite WAL auto-recovers on open
	// - Temp file cleanup (below)
	// - Expired multipart reaping (Stage 7)
	// - Default credential seeding (below)

	// Initialize SQLite metadata store.
	dbPath := cfg.Metadata.SQLite.Path
	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create metadata directory: %v\n", err)
		os.Exit(1)
	}
	metaStore, err := metadata.NewSQLiteStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize metadata store: %v\n", err)
		os.Exit(1)
	}
	defer metaStore.Close()

	// Seed default credentials (idempotent — crash-only recovery step).
	if err := seedDefaultCredentials(metaStore, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed credentials: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage backend based on config.
	var storageBackend storage.StorageBackend
	switch cfg.Storage.Backend {
	case "aws":
		aws := cfg.Storage.AWS
		if aws.Bucket == "" {
			fmt.Fprintf(os.Stderr, "storage.aws.bucket is required when backend is 'aws'\n")
			os.Exit(1)
		}
		region := aws.Region
		if region == "" {
			region = "us-east-1"
		}
		awsBackend, awsErr := storage.NewAWSGatewayBackend(context.Background(), aws.Bucket, region, aws.Prefix,
			aws.EndpointURL, aws.UsePathStyle, aws.AccessKeyID, aws.SecretAccessKey)
		if awsErr != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize AWS storage backend: %v\n", awsErr)
			os.Exit(1)
		}
		storageBackend = awsBackend
		log.Printf("Storage backend: aws (bucket=%s region=%s prefix=%q)", aws.Bucket, region, aws.Prefix)
	case "gcp":
		gcp := cfg.Storage.GCP
		if gcp.Bucket == "" {
			fmt.Fprintf(os.Stderr, "storage.gcp.bucket is required when backend is 'gcp'\n")
			os.Exit(1)
		}
		gcpBackend, gcpErr := storage.NewGCPGatewayBackend(context.Background(), gcp.Bucket, gcp.Project, gcp.Prefix)
		if gcpErr != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize GCP storage backend: %v\n", gcpErr)
			os.Exit(1)
		}
		storageBackend = gcpBackend
		log.Printf("Storage backend: gcp (bucket=%s project=%s prefix=%q)", gcp.Bucket, gcp.Project, gcp.Prefix)
	case "azure":
		azure := cfg.Storage.Azure
		accountURL := azure.AccountURL
		if azure.Container == "" {
			fmt.Fprintf(os.Stderr, "storage.azure.container is required when backend is 'azure'\n")
			os.Exit(1)
		}
		if accountURL == "" {
			if azure.Account == "" {
				fmt.Fprintf(os.Stderr, "storage.azure.account or storage.azure.account_url is required when backend is 'azure'\n")
				os.Exit(1)
			}
			accountURL = fmt.Sprintf("https://%s.blob.core.windows.net", azure.Account)
		}
		azureBackend, azureErr := storage.NewAzureGatewayBackend(context.Background(), azure.Container, accountURL, azure.Prefix)
		if azureErr != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize Azure storage backend: %v\n", azureErr)
			os.Exit(1)
		}
		storageBackend = azureBackend
		log.Printf("Storage backend: azure (container=%s account=%s prefix=%q)", azure.Container, accountURL, azure.Prefix)
	case "memory":
		memBackend, memErr := storage.NewMemoryBackend(cfg.Storage.Memory.MaxSizeBytes, cfg.Storage.Memory.Persistence,
			cfg.Storage.Memory.SnapshotPath, cfg.Storage.Memory.SnapshotIntervalSeconds)
		if memErr != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize memory storage backend: %v\n", memErr)
			os.Exit(1)
		}
		storageBackend = memBackend
		log.Printf("Storage backend: memory")
	default:
		// Default to local filesystem backend.
		storageRoot := cfg.Storage.Local.RootDir
		if err := os.MkdirAll(storageRoot, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create storage root directory: %v\n", err)
			os.Exit(1)
		}
		localBackend, localErr := storage.NewLocalBackend(storageRoot)
		if localErr != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize storage backend: %v\n", localErr)
			os.Exit(1)
		}
		// Crash-only recovery: clean orphan temp files from incomplete writes.
		if err := localBackend.CleanTempFiles(); err != nil {
			log.Printf("Warning: failed to clean temp files: %v", err)
		}
		storageBackend = localBackend
		log.Printf("Storage backend: local (%s)", storageRoot)
	}

	reg := registry.New()
	credSource := s3adapter.NewCredentialSource(metaStore)
	v4 := sigv4.NewVerifier(credSource, cfg.Server.Region)
	v2 := sigv2.NewVerifier(s3adapter.NewCredentialSourceV2(metaStore))
	backend := s3adapter.New(metaStore, storageBackend, cfg.Server.Region, cfg.Auth.AccessKey, cfg.Auth.AccessKey)
	dispatcher := ops.New(reg, backend, access.DefaultChecker{}, v4, v2, cfg.Server.BaseDomain)

	srv := gateway.New(dispatcher)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	// Start the server in a goroutine so we can handle shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		log.Printf("s3kit listening on %s", addr)
		if err := srv.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// SIGTERM/SIGINT handler: stop accepting connections, wait for in-flight
	// requests with a timeout, then exit. No cleanup -- crash-only design.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)

		// Give in-flight requests up to 30 seconds to complete.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		log.Printf("Server stopped.")

	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}
}

// seedDefaultCredentials creates the default credential record from the config
// if it does not already exist. This runs on every startup as part of
// crash-only recovery.
func seedDefaultCredentials(store *metadata.SQLiteStore, cfg *config.Config) error {
	ctx := context.Background()

	// Check if the default credential already exists.
	existing, err := store.GetCredential(ctx, cfg.Auth.AccessKey)
	if err != nil {
		return fmt.Errorf("checking default credential: %w", err)
	}
	if existing != nil {
		// Already seeded. Nothing to do.
		return nil
	}

	cred := &metadata.CredentialRecord{
		AccessKeyID: cfg.Auth.AccessKey,
		SecretKey:   cfg.Auth.SecretKey,
		OwnerID:     cfg.Auth.AccessKey,
		DisplayName: cfg.Auth.AccessKey,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.PutCredential(ctx, cred); err != nil {
		return fmt.Errorf("seeding default credential: %w", err)
	}
	log.Printf("Seeded default credentials for access key %q", cfg.Auth.AccessKey)
	return nil
}
