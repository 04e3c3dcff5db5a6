package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"secret-santa-service/internal/config"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	defaultRate        = 5
	defaultDuration    = 60 * time.Second
	defaultGameName    = "load-game"
	defaultResultsFile = "load/artifacts/results.bin"
	defaultTargetsFile = "load/targets.json"
	seedParticipants   = 3
)

var resultsFile = defaultResultsFile

func main() {
	targetsDefault := defaultTargetsFile
	if cfg, err := config.Load(); err == nil && cfg.LoadTests.TargetsPath != "" {
		targetsDefault = cfg.LoadTests.TargetsPath
	}

	var (
		baseURL     = flag.String("url", defaultBaseURL, "Base URL сервиса")
		rate        = flag.Int("rate", defaultRate, "Запросов в секунду")
		duration    = flag.Duration("duration", defaultDuration, "Длительность теста (например, 60s)")
		gameName    = flag.String("game", defaultGameName, "Имя тестовой игры")
		setupOnly   = flag.Bool("setup-only", false, "Только подготовка окружения (создание игры)")
		report      = flag.Bool("report", false, "Показать отчёт из сохранённых результатов")
		plot        = flag.Bool("plot", false, "Сгенерировать HTML график из сохранённых результатов")
		targetsPath = flag.String("targets", targetsDefault, "Файл для выгрузки целей в формате vegeta JSON")
		dumpOnly    = flag.Int("dump-targets", 0, "Выгрузить N целей в файл и выйти")
	)
	flag.Parse()

	if *report {
		showReport()
		return
	}

	if *plot {
		generatePlot()
		return
	}

	gameID, err := setupGame(*baseURL, *gameName)
	if err != nil {
		log.Fatalf("Ошибка при подготовке окружения: %v", err)
	}
	if *setupOnly {
		return
	}

	if *dumpOnly > 0 {
		if err := dumpTargets(*targetsPath, newGameTargeter(*baseURL, gameID), *dumpOnly); err != nil {
			log.Fatalf("Ошибка при выгрузке целей: %v", err)
		}
		return
	}

	// Полный цикл: setup + нагрузочное тестирование
	fmt.Println("=== Нагрузочное тестирование с Vegeta ===")
	fmt.Printf("URL: %s\n", *baseURL)
	fmt.Printf("Rate: %d req/s\n", *rate)
	fmt.Printf("Duration: %s\n", *duration)
	fmt.Printf("Game: %s\n", gameID)
	fmt.Println()

	fmt.Println("Запуск нагрузочного тестирования...")
	if err := runLoadTest(*baseURL, *rate, *duration, gameID); err != nil {
		log.Fatalf("Ошибка при нагрузочном тестировании: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Тестирование завершено ===")
	fmt.Println("Для детального анализа выполните:")
	fmt.Printf("  go run ./load/cli -report\n")
	fmt.Printf("  go run ./load/cli -plot\n")
}

// setupGame создаёт тестовую игру и регистрирует в ней стартовый состав.
// Возвращает идентификатор игры.
func setupGame(baseURL, gameName string) (string, error) {
	name := fmt.Sprintf("%s-%d", gameName, time.Now().UnixNano())
	res, err := sendOnce(vegeta.Target{
		Method: http.MethodPost,
		URL:    baseURL + "/games/create",
		Header: jsonHeader(),
		Body:   mustJSON(map[string]string{"name": name, "text": "load test"}),
	})
	if err != nil {
		return "", err
	}
	if res.Code != http.StatusCreated {
		return "", fmt.Errorf("не удалось создать игру: статус %d", res.Code)
	}

	var created struct {
		Game struct {
			ID string `json:"game_id"`
		} `json:"game"`
	}
	if err := json.Unmarshal(res.Body, &created); err != nil {
		return "", fmt.Errorf("decode game: %w", err)
	}
	if created.Game.ID == "" {
		return "", fmt.Errorf("в ответе нет game_id")
	}

	for i := 0; i < seedParticipants; i++ {
		res, err := sendOnce(registerTarget(baseURL, created.Game.ID, fmt.Sprintf("seed-%d", i)))
		if err != nil {
			return "", err
		}
		if res.Code != http.StatusCreated {
			return "", fmt.Errorf("не удалось зарегистрировать участника: статус %d", res.Code)
		}
	}

	fmt.Printf("Игра '%s' создана, участников: %d\n", name, seedParticipants)
	return created.Game.ID, nil
}

// sendOnce отправляет одиночный запрос через vegeta и возвращает результат с телом ответа.
func sendOnce(target vegeta.Target) (*vegeta.Result, error) {
	attacker := vegeta.NewAttacker(vegeta.Timeout(10 * time.Second))
	var last *vegeta.Result
	for res := range attacker.Attack(vegeta.NewStaticTargeter(target), vegeta.Rate{Freq: 1, Per: time.Second}, time.Second, "setup") {
		last = res
	}
	if last == nil {
		return nil, fmt.Errorf("%s %s: нет ответа", target.Method, target.URL)
	}
	if last.Error != "" && last.Code == 0 {
		return nil, fmt.Errorf("%s %s: %s", target.Method, target.URL, last.Error)
	}
	return last, nil
}

// runLoadTest запускает нагрузочное тестирование
func runLoadTest(baseURL string, rate int, duration time.Duration, gameID string) error {
	if rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", rate)
	}
	targeter := newGameTargeter(baseURL, gameID)

	// Настраиваем атакующего
	workers := uint64(rate)
	attacker := vegeta.NewAttacker(
		vegeta.Timeout(30*time.Second),
		vegeta.Workers(workers),
	)

	// Запускаем атаку
	var metrics vegeta.Metrics
	ctx, cancel := context.WithTimeout(context.Background(), duration+5*time.Second)
	defer cancel()

	rateLimit := vegeta.Rate{Freq: rate, Per: time.Second}
	results := attacker.Attack(targeter, rateLimit, duration, "load-test")

	// Собираем результаты
	var allResults []vegeta.Result
	for res := range results {
		select {
		case <-ctx.Done():
			continue
		default:
			metrics.Add(res)
			allResults = append(allResults, *res)
		}
	}
	metrics.Close()

	// Сохраняем результаты в файл
	if err := saveResults(allResults); err != nil {
		return fmt.Errorf("сохранить результаты: %w", err)
	}

	// Выводим отчёт
	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter(os.Stdout); err != nil {
		return fmt.Errorf("сгенерировать отчёт: %w", err)
	}

	return nil
}

// newGameTargeter чередует чтение игры, список игр и регистрацию новых участников.
func newGameTargeter(baseURL, gameID string) vegeta.Targeter {
	var seq atomic.Uint64
	return func(t *vegeta.Target) error {
		n := seq.Add(1)
		switch n % 3 {
		case 0:
			*t = registerTarget(baseURL, gameID, fmt.Sprintf("load-%d-%d", time.Now().UnixNano(), n))
		case 1:
			*t = vegeta.Target{Method: http.MethodGet, URL: baseURL + "/games/get?game_id=" + gameID}
		default:
			*t = vegeta.Target{Method: http.MethodGet, URL: baseURL + "/games/"}
		}
		return nil
	}
}

func registerTarget(baseURL, gameID, name string) vegeta.Target {
	return vegeta.Target{
		Method: http.MethodPost,
		URL:    baseURL + "/participants/register",
		Header: jsonHeader(),
		Body: mustJSON(map[string]string{
			"game_id": gameID,
			"name":    name,
			"email":   name + "@load.test",
			"wishes":  "anything",
		}),
	}
}

// dumpTargets сохраняет n целей в формате vegeta JSON для запуска через CLI vegeta.
func dumpTargets(path string, targeter vegeta.Targeter, n int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("создать директорию: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("создать файл: %w", err)
	}
	defer file.Close()

	encode := vegeta.NewJSONTargetEncoder(file)
	for i := 0; i < n; i++ {
		var target vegeta.Target
		if err := targeter(&target); err != nil {
			return err
		}
		if err := encode(&target); err != nil {
			return fmt.Errorf("записать цель: %w", err)
		}
	}
	fmt.Printf("Цели сохранены в %s\n", path)
	return nil
}

func jsonHeader() http.Header {
	return http.Header{"Content-Type": []string{"application/json"}}
}

func mustJSON(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return body
}

// saveResults сохраняет результаты в бинарный файл
func saveResults(results []vegeta.Result) error {
	if err := os.MkdirAll(filepath.Dir(resultsFile), 0o755); err != nil {
		return fmt.Errorf("создать директорию: %w", err)
	}

	file, err := os.Create(resultsFile)
	if err != nil {
		return fmt.Errorf("создать файл: %w", err)
	}
	defer file.Close()

	encoder := vegeta.NewEncoder(file)
	for i := range results {
		if err := encoder.Encode(&results[i]); err != nil {
			return fmt.Errorf("записать результат: %w", err)
		}
	}

	fmt.Printf("Результаты сохранены в %s\n", resultsFile)
	return nil
}

// showReport показывает отчёт из сохранённых результатов
func showReport() {
	if err := renderReport(os.Stdout, resultsFile); err != nil {
		log.Fatalf("Не удалось построить отчёт: %v", err)
	}
}

func renderReport(out io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	decoder := vegeta.NewDecoder(file)
	var metrics vegeta.Metrics

	for {
		var res vegeta.Result
		if err := decoder.Decode(&res); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("decode result: %w", err)
		}
		metrics.Add(&res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	if err := reporter(out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// generatePlot генерирует HTML график из сохранённых результатов
// Использует CLI утилиту vegeta для генерации графика
func generatePlot() {
	writePlotInstructions(os.Stdout)
}

func writePlotInstructions(out io.Writer) {
	fmt.Fprintln(out, "Для генерации HTML графика используйте CLI утилиту vegeta:")
	fmt.Fprintf(out, "  vegeta plot %s > load/artifacts/plot.html\n", resultsFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Установка CLI утилиты:")
	fmt.Fprintln(out, "  go install github.com/tsenart/vegeta/v12@latest")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Или используйте сохранённые результаты для анализа через другие инструменты.")
}
