package converter

// Export fixtures as they look after ISO-8859-1 decoding.

const ingCashExport = `Umsatzanzeige;Datei erstellt am: 25.01.2021 10:00
;Letztes Update: aktuell

IBAN;DE12 3456 7890 1234 5678 90
Kontoname;Girokonto
Bank;ING
Kunde;Max Mustermann
Zeitraum;01.01.2021 - 25.01.2021
Saldo;1.234,56;EUR

Sortierung;Datum absteigend

In der CSV-Datei finden Sie alle bereits gebuchten Umsätze.

Buchung;Valuta;Auftraggeber/Empfänger;Buchungstext;Verwendungszweck;Saldo;Währung;Betrag;Währung
20.01.2021;20.01.2021;Bäckerei Müller;Lastschrift;Brötchen;1.234,56;EUR;-3,20;EUR
18.01.2021;18.01.2021;ACME GmbH;Gehalt;;1.237,76;EUR;2.500,00;EUR
`

const dkbCashExport = "\"Kontonummer:\";\"DE12345678901234567890 / Girokonto\";\r\n" +
	"\r\n" +
	"\"Von:\";\"01.01.2021\";\r\n" +
	"\"Bis:\";\"31.01.2021\";\r\n" +
	"\"Kontostand vom 31.01.2021:\";\"1.000,00 EUR\";\r\n" +
	"\r\n" +
	"\"Buchungstag\";\"Wertstellung\";\"Buchungstext\";\"Auftraggeber / Begünstigter\";\"Verwendungszweck\";\"Kontonummer\";\"BLZ\";\"Betrag (EUR)\";\"Gläubiger-ID\";\"Mandatsreferenz\";\"Kundenreferenz\";\r\n" +
	"\"04.01.2021\";\"04.01.2021\";\"Lastschrift\";\"REWE Markt\";\"Einkauf; Filiale 12\";\"DE111\";\"BYLADEM1001\";\"-12,50\";\"\";\"\";\"\";\r\n" +
	"\"5.1.2021\";\"05.01.2021\";\"Gutschrift\";\"ACME GmbH\";\"\";\"DE222\";\"BYLADEM1001\";\"1.250,00\";\"\";\"\";\"\";\r\n"

const dkbVisaExport = `"Kreditkarte:";"1234********5678 Kreditkarte";

"Zeitraum:";"letzten 60 Tage";
"Saldo:";"-100,00 EUR";
"Datum:";"31.01.2021";

"Umsatz abgerechnet und nicht im Saldo enthalten";"Wertstellung";"Belegdatum";"Beschreibung";"Betrag (EUR)";"Ursprünglicher Betrag";
"Ja";"15.01.2021";"14.01.2021";"AMAZON.DE";"-42,99";"";
"Ja";"12.01.2021";"11.01.2021";"DB BAHN";"-57,01";"";
"Nein";"09.01.2021";"08.01.2021";"CAFE CENTRAL";"-4,50";"";
"Nein";"02.01.2021";"01.01.2021";"EINZAHLUNG";"4,50";"";
`

// Visa export restricted to a date range: the bank only lists the
// transactions inside the range.
const dkbVisaRangeExport = `"Kreditkarte:";"1234********5678 Kreditkarte";

"Von:";"10.01.2021";
"Bis:";"14.01.2021";
"Saldo:";"-100,00 EUR";
"Datum:";"31.01.2021";

"Umsatz abgerechnet und nicht im Saldo enthalten";"Wertstellung";"Belegdatum";"Beschreibung";"Betrag (EUR)";"Ursprünglicher Betrag";
"Ja";"12.01.2021";"11.01.2021";"DB BAHN";"-57,01";"";
`
