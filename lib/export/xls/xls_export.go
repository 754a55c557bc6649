package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	ankenapimodels "anken-match-backend/models/api/anken"
	matchingapimodels "anken-match-backend/models/api/matching"
)

type Provider interface {
	ExportMatchingResult(result matchingapimodels.MatchingResult) (*bytes.Buffer, error)
	ExportAnkenList(list []ankenapimodels.AnkenRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"要員ID", "氏名", "年齢", "スキル", "最寄駅", "希望勤務形態", "マッチ度", "受信日時", "理由コメント"}

var ankenHeaders = []string{"ID", "案件名", "受信日付", "作業場所", "勤務形態", "単価", "時期", "必須スキル"}

func (i impl) ExportMatchingResult(result matchingapimodels.MatchingResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ファイルのクローズに失敗")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsxヘッダの作成に失敗")
	}
	if len(result.Candidates) != 0 {
		row, err = writeCandidateData(f, sheet, result.Candidates, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsxデータ行の作成に失敗")
		}
	}
	f.SetSheetName(sheet, "マッチング結果")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []matchingapimodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "要員ID"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.YoinID); err != nil {
			return row, err
		}

		// "氏名"
		col++
		if err := writeColumn(f, sheet, col, row, item.YoinInfo.Name); err != nil {
			return row, err
		}

		// "年齢"
		col++
		if err := writeColumn(f, sheet, col, row, item.YoinInfo.Age); err != nil {
			return row, err
		}

		// "スキル"
		col++
		if err := writeColumn(f, sheet, col, row, item.YoinInfo.Skill); err != nil {
			return row, err
		}

		// "最寄駅"
		col++
		if err := writeColumn(f, sheet, col, row, item.YoinInfo.NearestStation); err != nil {
			return row, err
		}

		// "希望勤務形態"
		col++
		if err := writeColumn(f, sheet, col, row, item.YoinInfo.PreferWorkStyle); err != nil {
			return row, err
		}

		// "マッチ度" は表示層としてここで整数へ変換する
		col++
		if err := writeColumn(f, sheet, col, row, item.MatchScore.Int()); err != nil {
			return row, err
		}

		// "受信日時"
		col++
		if err := writeColumn(f, sheet, col, row, item.ReceivedDateTime); err != nil {
			return row, err
		}

		// "理由コメント"
		col++
		if err := writeColumn(f, sheet, col, row, item.ReasonComment); err != nil {
			return row, err
		}
	}
	return row, nil
}

func (i impl) ExportAnkenList(list []ankenapimodels.AnkenRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ファイルのクローズに失敗")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, ankenHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsxヘッダの作成に失敗")
	}
	if len(list) != 0 {
		row, err = writeAnkenData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsxデータ行の作成に失敗")
		}
	}
	f.SetSheetName(sheet, "案件一覧")
	return f.WriteToBuffer()
}

func writeAnkenData(f *excelize.File, sheet string, list []ankenapimodels.AnkenRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(ankenHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		// "ID"
		if err := writeColumn(f, sheet, col, row, deref(item.ID)); err != nil {
			return row, err
		}

		// "案件名"（無ければ件名）
		col++
		if err := writeColumn(f, sheet, col, row, item.Title()); err != nil {
			return row, err
		}

		// "受信日付"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.ReceivedDate)); err != nil {
			return row, err
		}

		// "作業場所"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.WorkLocation)); err != nil {
			return row, err
		}

		// "勤務形態"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.WorkStyle)); err != nil {
			return row, err
		}

		// "単価"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.UnitPrice)); err != nil {
			return row, err
		}

		// "時期"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.StartPeriod)); err != nil {
			return row, err
		}

		// "必須スキル"
		col++
		if err := writeColumn(f, sheet, col, row, deref(item.RequiredSkill)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
