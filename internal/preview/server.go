// Package preview serves the rendered occupancy report locally so it can be
// inspected in a browser before sharing.
package preview

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"warehub/internal/export"
	"warehub/internal/report"
)

type Server struct {
	fetch report.FetchFunc
	port  int
}

func NewServer(fetch report.FetchFunc, port int) *Server {
	return &Server{fetch: fetch, port: port}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHTML).Methods("GET")
	r.HandleFunc("/occupancy.xlsx", s.handleXLSX).Methods("GET")
	r.HandleFunc("/occupancy.pdf", s.handlePDF).Methods("GET")
	r.HandleFunc("/occupancy.csv", s.handleCSV).Methods("GET")
	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	return r
}

// Start blocks serving the preview until the process exits.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	log.Printf("[Preview] Report preview running on http://localhost:%d", s.port)
	return srv.ListenAndServe()
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	rep, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, "Failed to load report", http.StatusBadGateway)
		return
	}
	doc, err := export.HTML(rep.ReportData, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc))
}

func (s *Server) handleXLSX(w http.ResponseWriter, r *http.Request) {
	rep, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, "Failed to load report", http.StatusBadGateway)
		return
	}
	f, err := export.Workbook(rep.ReportData, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="occupancy.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("[Preview] Failed to stream workbook: %v", err)
	}
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	rep, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, "Failed to load report", http.StatusBadGateway)
		return
	}
	out, err := export.PDF(rep.ReportData, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="occupancy.pdf"`)
	w.Write(out)
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	rep, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, "Failed to load report", http.StatusBadGateway)
		return
	}
	out, err := export.CSV(rep.ReportData)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="occupancy.csv"`)
	w.Write(out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
