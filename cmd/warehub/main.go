package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"warehub/internal/api"
	"warehub/internal/authstore"
	"warehub/internal/config"
	"warehub/internal/export"
	"warehub/internal/format"
	"warehub/internal/lists"
	"warehub/internal/models"
	"warehub/internal/preview"
	"warehub/internal/report"
	"warehub/internal/share"
)

// logNotifier routes controller and engine notifications to the terminal.
type logNotifier struct{}

func (logNotifier) Notify(msg string) { log.Printf("[WareHub] %s", msg) }

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: warehub <command> [flags]

Commands:
  login    -token <jwt>                     store the API token
  logout                                    clear the stored token
  list     <warehouses|units|bookings|payments|users> [-search s] [-filter f] [-all]
  delete   <warehouses|units|bookings|payments|users> -id <n>
  report   export [-format xlsx|html|pdf|csv] [-upload]
  report   preview                          serve the report at the preview port`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()

	store, err := authstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer store.Close()

	client := api.NewClient(cfg.API.BaseURL, store, cfg.Timeout())
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(store, os.Args[2:])
	case "logout":
		if err := store.ClearToken(); err != nil {
			log.Fatalf("Failed to clear token: %v", err)
		}
		log.Printf("[WareHub] Token cleared")
	case "list":
		warnIfExpired(store)
		runList(ctx, client, cfg, os.Args[2:])
	case "delete":
		warnIfExpired(store)
		runDelete(ctx, client, os.Args[2:])
	case "report":
		warnIfExpired(store)
		runReport(ctx, client, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func runLogin(store *authstore.Store, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "bearer token issued by the API")
	fs.Parse(args)
	if *token == "" {
		log.Fatal("login requires -token")
	}
	if err := store.SetToken(*token); err != nil {
		log.Fatalf("Failed to store token: %v", err)
	}
	if exp, err := store.TokenExpiry(); err == nil {
		log.Printf("[WareHub] Token stored, valid until %s", format.DateTime(exp))
	} else {
		log.Printf("[WareHub] Token stored")
	}
}

func warnIfExpired(store *authstore.Store) {
	exp, err := store.TokenExpiry()
	if err == nil && time.Now().After(exp) {
		log.Printf("[WareHub] Stored token expired %s; run warehub login", format.DateTime(exp))
	}
}

func runList(ctx context.Context, client *api.Client, cfg *config.Config, args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	entity := args[0]

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "free-text search")
	filter := fs.String("filter", "all", "status filter")
	all := fs.Bool("all", false, "print every page instead of the first")
	fs.Parse(args[1:])

	switch entity {
	case "warehouses":
		printList(ctx, cfg, client.ListWarehouses, client.DeleteWarehouse, *search, *filter, *all,
			func(w models.Warehouse) string {
				return fmt.Sprintf("%4d  %-24s %-14s %s", w.ID, w.Name, w.City, w.Status)
			})
	case "units":
		printList(ctx, cfg, client.ListUnits, client.DeleteUnit, *search, *filter, *all,
			func(u models.StorageUnit) string {
				return fmt.Sprintf("%4d  %-12s %-24s floor %-3s %8.0f sqft  %-12s %s",
					u.ID, u.Name, u.WarehouseName, u.Floor, u.SizeSqft, u.Status,
					format.Currency(format.Amount(u.MonthlyRate)))
			})
	case "bookings":
		printList(ctx, cfg, client.ListBookings, client.DeleteBooking, *search, *filter, *all,
			func(b models.Booking) string {
				return fmt.Sprintf("%4d  %-24s %-12s %s - %s  %-10s %s",
					b.ID, b.CustomerName, b.UnitName,
					format.Date(b.StartDate), format.Date(b.EndDate), b.Status,
					format.Currency(format.Amount(b.TotalAmount)))
			})
	case "payments":
		printList(ctx, cfg, client.ListPayments, client.DeletePayment, *search, *filter, *all,
			func(p models.Payment) string {
				return fmt.Sprintf("%4d  booking %-5d %-24s %-14s %-8s %s",
					p.ID, p.BookingID, p.CustomerName, p.Method, p.Status,
					format.Currency(format.Amount(p.Amount)))
			})
	case "users":
		printList(ctx, cfg, client.ListUsers, client.DeleteUser, *search, *filter, *all,
			func(u models.User) string {
				return fmt.Sprintf("%4d  %-24s %-28s %-10s %s", u.ID, u.Name, u.Email, u.Role, u.Status)
			})
	default:
		usage()
		os.Exit(2)
	}
}

func printList[T lists.Entity](
	ctx context.Context,
	cfg *config.Config,
	fetch lists.FetchFunc[T],
	del lists.DeleteFunc,
	search, filter string,
	all bool,
	render func(T) string,
) {
	c := lists.NewController(fetch, del, lists.Options{
		PerPage:  cfg.List.ItemsPerPage,
		Debounce: cfg.Debounce(),
		Notifier: logNotifier{},
		Search:   search,
		Filter:   filter,
	})
	c.Fetch(ctx)
	if all {
		for c.Page() < c.TotalPages() {
			c.LoadMore()
		}
	}
	for _, item := range c.Visible() {
		fmt.Println(render(item))
	}
	fmt.Printf("-- page %d/%d, showing %d of %d\n", c.Page(), c.TotalPages(), len(c.Visible()), c.Total())
}

func runDelete(ctx context.Context, client *api.Client, args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	entity := args[0]

	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int("id", 0, "entity id")
	fs.Parse(args[1:])
	if *id <= 0 {
		log.Fatal("delete requires -id")
	}

	var err error
	switch entity {
	case "warehouses":
		err = client.DeleteWarehouse(ctx, *id)
	case "units":
		err = client.DeleteUnit(ctx, *id)
	case "bookings":
		err = client.DeleteBooking(ctx, *id)
	case "payments":
		err = client.DeletePayment(ctx, *id)
	case "users":
		err = client.DeleteUser(ctx, *id)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Failed to delete %s %d: %v", entity, *id, err)
	}
	log.Printf("[WareHub] Deleted %s %d", entity, *id)
}

func runReport(ctx context.Context, client *api.Client, cfg *config.Config, args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "export":
		runReportExport(ctx, client, cfg, args[1:])
	case "preview":
		srv := preview.NewServer(client.OccupancyReport, cfg.Preview.Port)
		log.Fatal(srv.Start())
	default:
		usage()
		os.Exit(2)
	}
}

func runReportExport(ctx context.Context, client *api.Client, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("report export", flag.ExitOnError)
	formatFlag := fs.String("format", "xlsx", "xlsx, html, pdf or csv")
	upload := fs.Bool("upload", false, "upload the artifact to share storage")
	fs.Parse(args)

	engine := report.NewEngine(client.OccupancyReport, logNotifier{}, cfg.List.ItemsPerPage)
	engine.Fetch(ctx)
	rows := engine.Rows()
	if len(rows) == 0 {
		os.Exit(1)
	}
	if link := engine.DownloadLink(); link != "" {
		log.Printf("[WareHub] Server-rendered copy: %s", link)
	}

	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		log.Fatalf("Failed to create export dir: %v", err)
	}

	now := time.Now()
	stamp := now.Format("20060102_150405")
	var (
		name        string
		data        []byte
		contentType string
	)
	switch *formatFlag {
	case "xlsx":
		f, err := export.Workbook(rows, now)
		if err != nil {
			log.Fatalf("Failed to build workbook: %v", err)
		}
		defer f.Close()
		buf, err := f.WriteToBuffer()
		if err != nil {
			log.Fatalf("Failed to serialize workbook: %v", err)
		}
		name = fmt.Sprintf("occupancy_%s.xlsx", stamp)
		data = buf.Bytes()
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "html":
		doc, err := export.HTML(rows, now)
		if err != nil {
			log.Fatalf("Failed to render HTML report: %v", err)
		}
		name = fmt.Sprintf("occupancy_%s.html", stamp)
		data = []byte(doc)
		contentType = "text/html"
	case "pdf":
		out, err := export.PDF(rows, now)
		if err != nil {
			log.Fatalf("Failed to render PDF report: %v", err)
		}
		name = fmt.Sprintf("occupancy_%s.pdf", stamp)
		data = out
		contentType = "application/pdf"
	case "csv":
		out, err := export.CSV(rows)
		if err != nil {
			log.Fatalf("Failed to render CSV report: %v", err)
		}
		name = fmt.Sprintf("occupancy_%s.csv", stamp)
		data = out
		contentType = "text/csv"
	default:
		log.Fatalf("Unknown export format %q", *formatFlag)
	}

	path := filepath.Join(cfg.Export.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("[WareHub] Exported %s (%d units)", path, len(rows))

	if *upload {
		uploader, err := share.NewUploader(ctx, share.Config{
			Endpoint:  cfg.Share.Endpoint,
			Region:    cfg.Share.Region,
			Bucket:    cfg.Share.Bucket,
			AccessKey: cfg.Share.AccessKey,
			SecretKey: cfg.Share.SecretKey,
		})
		if err != nil {
			log.Fatalf("Share upload unavailable: %v", err)
		}
		key, err := uploader.Upload(ctx, name, data, contentType)
		if err != nil {
			log.Fatalf("Share upload failed: %v", err)
		}
		log.Printf("[WareHub] Uploaded to %s", key)
	}
}
