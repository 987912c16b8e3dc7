package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"go0183/internal/config"
	"go0183/internal/logging"
	"go0183/internal/nmea"
	"go0183/internal/report"
	"go0183/internal/source"
	"go0183/internal/web"
)

// Application represents the main application
type Application struct {
	config     Config
	logger     *logrus.Logger
	pipeline   config.Config
	logRotator *logging.LogRotator
	fixWriter  *report.Writer
	publisher  *Publisher
	status     *web.Status
	webServer  *web.Server
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup // service goroutines
	rcvWG      sync.WaitGroup // receiver pipelines
	verbose    bool
}

// fixKey identifies one position report. A new FIX record is emitted only
// when a sentence moves the key, so satellite or quality refreshes do not
// duplicate records.
type fixKey struct {
	time nmea.TimeOfDay
	lat  nmea.Float
	lon  nmea.Float
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config:  config,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		verbose: config.Verbose,
	}
}

// Start starts the application and blocks until every receiver finishes
// or a shutdown signal arrives.
func (app *Application) Start() error {
	app.logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting NMEA-0183 decoder")

	// Initialize components
	if err := app.initializeComponents(); err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start processing
	if err := app.run(); err != nil {
		app.logger.WithError(err).Error("Application error")
		app.shutdown()
		return err
	}

	// File and stdin sources end on their own; serial sources run until a
	// signal arrives.
	finished := make(chan struct{})
	go func() {
		app.rcvWG.Wait()
		close(finished)
	}()

	select {
	case <-sigChan:
		app.logger.Info("Received shutdown signal")
	case <-finished:
		app.logger.Info("All receivers finished")
	}
	app.shutdown()

	return nil
}

// initializeComponents initializes all application components
func (app *Application) initializeComponents() error {
	pipeline, err := app.config.Pipeline()
	if err != nil {
		return err
	}
	app.pipeline = pipeline

	// Initialize log rotator
	app.logRotator, err = logging.NewLogRotator(pipeline.Log.Dir, pipeline.Log.UTC, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize log rotator: %w", err)
	}

	// Initialize FIX record writer
	app.fixWriter = report.NewWriter(app.logRotator, app.logger)

	app.status = web.NewStatus()
	if pipeline.Web.Enable {
		app.webServer = web.NewServer(pipeline.Web.Addr, app.status, app.logger)
	}

	if pipeline.MQTT.Enable {
		app.publisher, err = NewPublisher(pipeline.MQTT, app.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize MQTT publisher: %w", err)
		}
	}

	return nil
}

// run starts the receiver pipelines and supporting goroutines
func (app *Application) run() error {
	app.logger.Info("Starting receiver pipelines")

	// Start log rotation
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.logRotator.Start(app.ctx)
	}()

	// Start status server
	if app.webServer != nil {
		app.wg.Add(1)
		go func() {
			defer app.wg.Done()
			if err := app.webServer.Serve(app.ctx); err != nil {
				app.logger.WithError(err).Error("Status server failed")
			}
		}()
	}

	for _, rcv := range app.pipeline.Receivers {
		if err := app.startReceiver(rcv); err != nil {
			return err
		}
	}

	// Start statistics reporting
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.reportStatistics()
	}()

	app.logger.Info("All components started successfully")
	return nil
}

// startReceiver starts the source reader and sentence processor of one
// receiver.
func (app *Application) startReceiver(rcv config.Receiver) error {
	capability, err := rcv.Capability()
	if err != nil {
		return err
	}

	receiver, err := nmea.NewContext(capability)
	if err != nil {
		return fmt.Errorf("receiver %s: %w", rcv.Name, err)
	}

	name := rcv.Name
	receiver.SetErrorFunc(func(code nmea.Code, msg string) {
		app.status.RecordResult(name, code)
		if app.verbose {
			app.logger.WithFields(logrus.Fields{
				"receiver": name,
				"code":     code.String(),
			}).Debug(msg)
		}
	})

	src, err := source.New(rcv)
	if err != nil {
		return fmt.Errorf("receiver %s: %w", rcv.Name, err)
	}

	// Closing the source unblocks a pending read once the context ends.
	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		<-app.ctx.Done()
		src.Close()
	}()

	lines := make(chan []byte, 100)

	app.rcvWG.Add(1)
	go func() {
		defer app.rcvWG.Done()
		defer close(lines)
		if err := src.Lines(app.ctx, lines); err != nil {
			app.logger.WithError(err).WithField("receiver", name).Error("Source read failed")
		}
	}()

	app.rcvWG.Add(1)
	go func() {
		defer app.rcvWG.Done()
		app.processLines(name, receiver, lines)
	}()

	app.logger.WithFields(logrus.Fields{
		"receiver": name,
		"source":   rcv.Source,
		"modules":  capability.Modules.String(),
	}).Info("Receiver started")

	return nil
}

// processLines decodes incoming sentences and fans accepted ones out to
// the FIX log, the MQTT publisher and websocket clients.
func (app *Application) processLines(name string, receiver *nmea.Context, lines <-chan []byte) {
	scratch := nmea.NewTokenSet(nmea.RequiredTokens(receiver.Capability()))

	var last fixKey
	for line := range lines {
		if err := receiver.Parse(line, scratch); err != nil {
			// Counted by the receiver's error callback.
			continue
		}
		app.status.RecordResult(name, nmea.CodeOK)

		if app.webServer != nil {
			app.webServer.Broadcast(name, line)
		}

		g, err := receiver.GNSS()
		if err != nil || !g.HasFix {
			continue
		}
		key := fixKey{time: g.Time, lat: g.Latitude, lon: g.Longitude}
		if key == last {
			continue
		}
		last = key

		if err := app.fixWriter.WriteFix(name, g); err != nil {
			app.logger.WithError(err).WithField("receiver", name).Debug("Failed to write FIX record")
		}
		app.status.RecordFix(name, g)

		if app.publisher != nil {
			if err := app.publisher.PublishFix(name, g); err != nil {
				app.logger.WithError(err).WithField("receiver", name).Debug("Failed to publish fix")
			}
		}
	}

	app.logger.WithField("receiver", name).Info("Sentence processing stopped")
}

// reportStatistics reports processing statistics periodically
func (app *Application) reportStatistics() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ticker.C:
			app.logStatistics()
		}
	}
}

// logStatistics logs the totals accumulated so far.
func (app *Application) logStatistics() {
	accepted, rejected := app.status.Totals()
	total := accepted + rejected

	fields := logrus.Fields{
		"accepted": accepted,
		"rejected": rejected,
	}
	if total > 0 {
		fields["accept_rate"] = fmt.Sprintf("%.2f%%", float64(accepted)/float64(total)*100)
	}
	if app.webServer != nil {
		fields["ws_clients"] = app.webServer.ClientCount()
	}
	app.logger.WithFields(fields).Info("Sentence processing statistics")
}

// shutdown gracefully shuts down the application
func (app *Application) shutdown() {
	app.logger.Info("Shutting down application")
	app.cancel()

	done := make(chan struct{})
	go func() {
		app.rcvWG.Wait()
		app.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		app.logger.Info("All goroutines finished")
	case <-time.After(5 * time.Second):
		app.logger.Warn("Shutdown timeout, forcing exit")
	}

	// Final statistics report
	if app.status != nil {
		app.logStatistics()
	}

	// Cleanup resources
	if app.publisher != nil {
		app.publisher.Close()
	}
	if app.logRotator != nil {
		app.logRotator.Close()
	}

	app.logger.Info("Shutdown completed")
}
