package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/camera"
	"github.com/dylanl321/AmcrestCameraConfigure-Frigate/internal/config"
)

// Variables to hold flag values
var (
	expFrigateURL  string
	expDefaultUser string
	expDefaultPass string
	expTimeout     int
	expInsecure    bool
	expPort        string
	serviceAction  string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	opts   config.Options
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &CameraCollector{Opts: p.opts}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Amcrest exporter listening on %s", addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

// CameraCollector re-runs discovery on every scrape and queries each
// credentialed camera for its time and overlay state. Nothing is cached
// between scrapes.
type CameraCollector struct {
	Opts  config.Options
	Mutex sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"amcrest_up", "Was the Frigate configuration reachable on the last scrape.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"amcrest_scrape_duration_seconds", "Time taken to scrape all cameras.", nil, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"amcrest_cameras_total", "Number of camera hosts discovered.", nil, nil,
	)
	cameraUpDesc = prometheus.NewDesc(
		"amcrest_camera_up", "Camera reachable with resolved credentials.", []string{"host", "source"}, nil,
	)
	timestampEnabledDesc = prometheus.NewDesc(
		"amcrest_camera_timestamp_enabled", "Timestamp overlay enabled.", []string{"host"}, nil,
	)
	dayOfWeekDesc = prometheus.NewDesc(
		"amcrest_camera_day_of_week_enabled", "Day of week shown in overlay.", []string{"host"}, nil,
	)
	ntpEnabledDesc = prometheus.NewDesc(
		"amcrest_camera_ntp_enabled", "NTP synchronization enabled on the camera.", []string{"host"}, nil,
	)
)

func (c *CameraCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- cameraCountDesc
	ch <- cameraUpDesc
	ch <- timestampEnabledDesc
	ch <- dayOfWeekDesc
	ch <- ntpEnabledDesc
}

func (c *CameraCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	reg, err := buildRegistry(c.Opts)
	if err != nil {
		success = 0.0
		log.Printf("Error discovering cameras: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, float64(len(reg.Records)))

	for _, rec := range reg.Records {
		if !rec.HasCredentials() {
			ch <- prometheus.MustNewConstMetric(cameraUpDesc, prometheus.GaugeValue, 0, rec.Host, string(rec.Source))
			continue
		}

		dev := camera.New(rec.Host, rec.Credentials, c.Opts.Timeout)

		isUp := 0.0
		if _, err := dev.CurrentTime(); err == nil {
			isUp = 1.0
		}
		ch <- prometheus.MustNewConstMetric(cameraUpDesc, prometheus.GaugeValue, isUp, rec.Host, string(rec.Source))
		if isUp == 0.0 {
			continue
		}

		if st, err := dev.TimestampStatus(); err == nil {
			ch <- prometheus.MustNewConstMetric(timestampEnabledDesc, prometheus.GaugeValue, boolGauge(st.Enabled), rec.Host)
			ch <- prometheus.MustNewConstMetric(dayOfWeekDesc, prometheus.GaugeValue, boolGauge(st.DayOfWeek), rec.Host)
		}

		if raw, err := dev.NTPConfigRaw(); err == nil {
			enabled := strings.Contains(raw, "NTP.Enable=true")
			ch <- prometheus.MustNewConstMetric(ntpEnabledDesc, prometheus.GaugeValue, boolGauge(enabled), rec.Host)
		}
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

func boolGauge(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus exporter service",
	Long: `Starts a long-running HTTP server that exposes per-camera time and
overlay metrics. Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// The exporter takes its own flags rather than the persistent ones so
		// the installed service carries a complete argument list.
		opts := config.Options{
			FrigateURL:  strings.TrimRight(expFrigateURL, "/"),
			DefaultUser: expDefaultUser,
			DefaultPass: expDefaultPass,
			Timeout:     time.Duration(expTimeout) * time.Second,
			Insecure:    expInsecure,
		}

		svcConfig := &service.Config{
			Name:        "amcrest-exporter",
			DisplayName: "Amcrest Camera Exporter",
			Description: "Exposes Amcrest camera time and overlay metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--frigate-url", expFrigateURL,
				"--default-user", expDefaultUser,
				"--default-pass", expDefaultPass,
				"--timeout", fmt.Sprint(expTimeout),
				"--port", expPort,
			},
		}
		if expInsecure {
			svcConfig.Arguments = append(svcConfig.Arguments, "--insecure")
		}

		prg := &program{opts: opts}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// Handle service control actions (install, start, stop, uninstall)
		if serviceAction != "" {
			if serviceAction == "install" && expFrigateURL == "" {
				log.Fatal("Error: You must provide --frigate-url to install the service.")
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		if expFrigateURL == "" {
			log.Fatal("Error: --frigate-url is required.")
		}

		// Run the service (blocking). This happens when the service manager
		// starts the binary, or when run interactively.
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expFrigateURL, "frigate-url", "", "Frigate base URL")
	exporterCmd.Flags().StringVar(&expDefaultUser, "default-user", "", "Fallback camera username")
	exporterCmd.Flags().StringVar(&expDefaultPass, "default-pass", "", "Fallback camera password")
	exporterCmd.Flags().IntVar(&expTimeout, "timeout", 10, "Request timeout in seconds")
	exporterCmd.Flags().BoolVar(&expInsecure, "insecure", false, "Skip TLS certificate verification for Frigate")
	exporterCmd.Flags().StringVar(&expPort, "port", "9822", "Port to listen on")

	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
