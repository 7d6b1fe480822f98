package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/toy-store-api/internal/scheduler"
	"github.com/vfg2006/toy-store-api/pkg/apiErrors"
	"github.com/vfg2006/toy-store-api/pkg/log"
)

// CronJobs indexa os serviços agendados pelo tipo usado na URL
type CronJobs map[string]scheduler.Job

func (c CronJobs) types() []string {
	types := make([]string, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob dispara manualmente uma cron job
func RunCronJob(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, exists := jobs[cronType]
		if !exists {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": jobs.types(),
			})
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("Disparo manual de cron job")

		if !job.TriggerManualSync() {
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de todas as cron jobs
func GetCronStatus(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(jobs))
		for cronType, job := range jobs {
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
