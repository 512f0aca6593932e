// gestorctl es la herramienta administrativa: exporta e importa respaldos y
// siembra las cuentas bancarias iniciales, operando directamente sobre el
// almacén de snapshots configurado.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/application/respaldo"
	"github.com/gestormx/gestor-comercial/internal/infrastructure/persistence"
	"github.com/gestormx/gestor-comercial/pkg/config"
	"github.com/gestormx/gestor-comercial/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "gestorctl",
	Short: "Herramienta administrativa de gestor-comercial",
	Long: `gestorctl administra el estado persistido de gestor-comercial:
respaldos completos (exportar/importar) y siembra de cuentas iniciales.

La persistencia se selecciona igual que en el servidor (PERSISTENCE_DRIVER,
DATA_DIR o DATABASE_URL).`,
	SilenceUsage: true,
}

var respaldoCmd = &cobra.Command{
	Use:   "respaldo",
	Short: "Exportar o importar un respaldo completo",
}

var exportarCmd = &cobra.Command{
	Use:   "exportar",
	Short: "Exportar el estado completo a un archivo de respaldo",
	Example: `  gestorctl respaldo exportar
  gestorctl respaldo exportar -o respaldo.json`,
	RunE: runExportar,
}

var importarCmd = &cobra.Command{
	Use:   "importar <archivo>",
	Short: "Importar un archivo de respaldo (reemplaza el estado completo)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportar,
}

var semillaCmd = &cobra.Command{
	Use:   "semilla",
	Short: "Crear con saldo cero las cuentas bancarias configuradas que falten",
	RunE:  runSemilla,
}

func init() {
	exportarCmd.Flags().StringP("salida", "o", "", "Archivo de salida (vacío = respaldo-<fecha>.json)")
	respaldoCmd.AddCommand(exportarCmd, importarCmd)
	rootCmd.AddCommand(respaldoCmd, semillaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// preparar carga configuración, abre el almacén y construye el motor con el
// estado persistido.
func preparar(ctx context.Context) (*config.Config, persistence.SnapshotStore, *orquestador.Orquestador, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.Nop()

	var store persistence.SnapshotStore
	cerrar := func() {}
	if cfg.Persistencia.Driver == config.DriverPostgres {
		pool, err := persistence.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		pg, err := persistence.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, nil, nil, err
		}
		store, cerrar = pg, pool.Close
	} else {
		fs, err := persistence.NewFileStore(cfg.Persistencia.DataDir)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		store = fs
	}

	estado, err := store.Cargar(ctx)
	if err != nil {
		cerrar()
		return nil, nil, nil, nil, fmt.Errorf("cargar estado: %w", err)
	}
	motor := orquestador.Nuevo(estado, store, log, orquestador.Cuentas{
		Ventas:     cfg.Cuentas.Ventas,
		Fletes:     cfg.Cuentas.Fletes,
		Utilidades: cfg.Cuentas.Utilidades,
	})
	return cfg, store, motor, cerrar, nil
}

func runExportar(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, _, motor, cerrar, err := preparar(ctx)
	if err != nil {
		return err
	}
	defer cerrar()

	svc := respaldo.NuevoServicio(motor, cfg.App.Version)
	doc := svc.Exportar()

	salida, _ := cmd.Flags().GetString("salida")
	if salida == "" {
		salida = "respaldo-" + time.Now().Format("20060102-150405") + ".json"
	}
	datos, err := respaldo.Serializar(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(salida, datos, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", salida, err)
	}
	fmt.Printf("respaldo exportado a %s\n", salida)
	return nil
}

func runImportar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, store, motor, cerrar, err := preparar(ctx)
	if err != nil {
		return err
	}
	defer cerrar()

	datos, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("leer %s: %w", args[0], err)
	}
	svc := respaldo.NuevoServicio(motor, cfg.App.Version)
	if err := svc.Importar(datos); err != nil {
		return err
	}
	// El motor persiste sin esperar; forzamos una escritura síncrona antes
	// de salir para que la importación quede en disco.
	if err := store.Guardar(ctx, motor.Snapshot()); err != nil {
		return err
	}
	fmt.Println("respaldo importado")
	return nil
}

func runSemilla(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, store, motor, cerrar, err := preparar(ctx)
	if err != nil {
		return err
	}
	defer cerrar()

	motor.AsegurarCuentas(cfg.Cuentas.Claves()...)
	if err := store.Guardar(ctx, motor.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("cuentas aseguradas: %v\n", cfg.Cuentas.Claves())
	return nil
}
