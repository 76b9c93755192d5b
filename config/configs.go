package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var MainRouter string
var DSN string
var Dbtype string
var Storage string
var Dbname string

// Ladder 容差阶梯，由细到粗；可在配置中覆盖
var Ladder = []float64{0.005, 0.05, 0.25, 0.5}

var MainConfig Config

type Config struct {
	XMLName    xml.Name `xml:"config"`
	MainRouter string   `xml:"MainRouter"`
	Dbtype     string   `xml:"dbtype"`
	Dbname     string   `xml:"dbname"`
	Host       string   `xml:"host"`
	Port       string   `xml:"port"`
	Username   string   `xml:"user"`
	Password   string   `xml:"password"`
	Storage    string   `xml:"storage"`
	Ladder     string   `xml:"ladder"`
}

func init() {

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	MainRouter = MainConfig.MainRouter
	Dbtype = MainConfig.Dbtype
	Dbname = MainConfig.Dbname
	Storage = MainConfig.Storage
	if ladder, ok := ParseLadder(MainConfig.Ladder); ok {
		Ladder = ladder
	}

	DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)

}

// ParseLadder 解析逗号分隔的容差阶梯，为空或含非法值时不覆盖默认值
func ParseLadder(text string) ([]float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	parts := strings.Split(text, ",")
	ladder := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || value <= 0 {
			fmt.Println("Error  parsing  ladder:", part)
			return nil, false
		}
		ladder = append(ladder, value)
	}
	return ladder, true
}
