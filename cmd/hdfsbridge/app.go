package main

import (
	"fmt"
	"log/slog"

	"github.com/veraek/hdfsbridge/internal/configuration"
	"github.com/veraek/hdfsbridge/internal/native"
	"github.com/veraek/hdfsbridge/pkg/hdfs"
	"github.com/veraek/hdfsbridge/pkg/transfer"
)

// App bundles the wired-up layers for one command invocation.
type App struct {
	settings        configuration.Settings
	registry        *hdfs.Registry
	transferHandler *transfer.Handler
}

// NewApp establishes the configuration and wires the native client into the
// registry and transfer layers. Command-line flags override settings read
// from the environment file.
func NewApp() *App {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var settings configuration.Settings
	if envFile != "" {
		settings = configHandler.EstablishSettings(envFile)
	}

	if namenodeHost != "" {
		settings.NamenodeHost = namenodeHost
	}
	if namenodePort != 0 {
		settings.NamenodePort = namenodePort
	}
	if namenodeUser != "" {
		settings.User = namenodeUser
	}

	client := &native.Client{}

	return &App{
		settings:        settings,
		registry:        hdfs.NewRegistry(client),
		transferHandler: transfer.NewHandler(client),
	}
}

// FallbackEndpoint returns the [hdfs.Endpoint] bare paths resolve against.
// Without a configured namenode, the native library's own "default"
// configuration is used.
func (app *App) FallbackEndpoint() hdfs.Endpoint {
	host := app.settings.NamenodeHost
	if host == "" {
		host = "default"
	}

	return hdfs.Endpoint{
		Scheme: hdfs.SchemeHdfs,
		Host:   host,
		Port:   app.settings.NamenodePort,
		User:   app.settings.User,
	}
}

// Resolve splits a URI and returns a connected handle for its endpoint along
// with the path within that filesystem.
func (app *App) Resolve(uri string) (*hdfs.FS, string, error) {
	endpoint, path, err := hdfs.ParseURI(uri, app.FallbackEndpoint())
	if err != nil {
		return nil, "", err
	}

	fs, err := app.registry.Get(endpoint)
	if err != nil {
		return nil, "", err
	}

	return fs, path, nil
}

// Close releases all cached filesystem connections.
func (app *App) Close() {
	if err := app.registry.DisconnectAll(); err != nil {
		slog.Warn("Failed disconnecting filesystem handles.", "err", err)
	}
}

// transferArgs resolves the source and destination arguments of a one-shot
// transfer command.
func (app *App) transferArgs(srcURI string, dstURI string) (srcFS *hdfs.FS, src string, dstFS *hdfs.FS, dst string, err error) {
	srcFS, src, err = app.Resolve(srcURI)
	if err != nil {
		return nil, "", nil, "", fmt.Errorf("source %q: %w", srcURI, err)
	}

	dstFS, dst, err = app.Resolve(dstURI)
	if err != nil {
		return nil, "", nil, "", fmt.Errorf("destination %q: %w", dstURI, err)
	}

	return srcFS, src, dstFS, dst, nil
}
