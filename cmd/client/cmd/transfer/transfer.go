package transfer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"invtrack/cmd/client/cmd/common"
	"invtrack/internal/app/client"
)

// ExportCmd и ImportCmd - обмен файлами с сервисом. Требуется режим
// администратора.
var (
	ExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Выгрузка Excel, печать QR этикеток и резервная копия",
	}
	ImportCmd = &cobra.Command{
		Use:   "import",
		Short: "Загрузка устройств из Excel",
	}
)

var (
	outDir string
	lang   string
)

var exportExcelCmd = &cobra.Command{
	Use:   "excel",
	Short: "Выгрузить все устройства в Excel",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := admin(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		file, err := app.ExportExcel(ctx, lang)
		if err != nil {
			return err
		}
		return save(file)
	},
}

var exportQRCmd = &cobra.Command{
	Use:   "qr [id...]",
	Short: "Сформировать PDF с QR этикетками",
	Long: `Печатает этикетки выбранных устройств. Переданные id добавляются к
выбору. После успешной печати выбор очищается.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := common.ParseIDs(args)
		if err != nil {
			return err
		}
		app, err := admin(cmd)
		if err != nil {
			return err
		}
		app.Select(ids...)

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		file, err := app.PrintQRLabels(ctx)
		if err != nil {
			return err
		}
		return save(file)
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Сохранить резервную копию всех данных в JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := admin(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		file, err := app.Backup(ctx)
		if err != nil {
			return err
		}
		return save(file)
	},
}

var importExcelCmd = &cobra.Command{
	Use:   "excel <file>",
	Short: "Загрузить устройства из файла .xlsx",
	Long: `Каждая строка таблицы создает новое устройство. Комната ищется по
названию, иначе берется первая. После загрузки данные перечитываются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := admin(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("ошибка открытия файла: %w", err)
		}
		defer f.Close()

		ctx, cancel := common.Timeout(cmd)
		defer cancel()

		msg, err := app.ImportExcel(ctx, filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		common.Success("%s", msg)
		return nil
	},
}

func admin(cmd *cobra.Command) (*client.App, error) {
	app, err := common.App(cmd)
	if err != nil {
		return nil, err
	}
	if err := common.RequireAdmin(cmd, app); err != nil {
		return nil, err
	}
	return app, nil
}

func save(file client.File) error {
	path, err := common.WriteFile(outDir, file)
	if err != nil {
		return err
	}
	common.Success("Файл сохранен: %s", path)
	return nil
}

func init() {
	ExportCmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "каталог для файла")
	exportExcelCmd.Flags().StringVar(&lang, "lang", "", "язык заголовков: ru или uz")

	ExportCmd.AddCommand(exportExcelCmd, exportQRCmd, exportBackupCmd)
	ImportCmd.AddCommand(importExcelCmd)
}
