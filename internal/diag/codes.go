package diag

import "fmt"

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Конфигурационные
	CfgInfo         Code = 1000
	CfgInvalidFlags Code = 1001
	CfgUnknownStage Code = 1002
	CfgBadManifest  Code = 1003

	// Трансформационные
	TrnInfo              Code = 2000
	TrnUnsupportedSyntax Code = 2001

	// Ввод-вывод
	IOInfo      Code = 3000
	IOReadFail  Code = 3001
	IOWriteFail Code = 3002
)

func (c Code) String() string {
	return fmt.Sprintf("M%04d", uint16(c))
}
