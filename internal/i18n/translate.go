// Package i18n renames dataset columns into a target language as a final
// post-processing pass over finished rows.
package i18n

import "fmt"

// columnTranslations maps English field names to Spanish. Unmapped names pass
// through untouched.
var columnTranslations = map[string]map[string]string{
	"es": {
		"id":                  "id",
		"natural_key":         "clave_natural",
		"tenant_id":           "id_inquilino",
		"source_system":       "sistema_origen",
		"source_table":        "tabla_origen",
		"batch_id":            "id_lote",
		"batch_time_utc":      "hora_lote_utc",
		"is_active":           "esta_activo",
		"valid_from_utc":      "valido_desde_utc",
		"valid_to_utc":        "valido_hasta_utc",
		"created_at_utc":      "creado_en_utc",
		"created_by":          "creado_por",
		"updated_at_utc":      "actualizado_en_utc",
		"updated_by":          "actualizado_por",
		"pii_sensitivity":     "sensibilidad_pii",
		"geo_country":         "pais_geografico",
		"geo_region":          "region_geografica",
		"geo_city":            "ciudad_geografica",
		"geo_lat":             "latitud",
		"geo_lon":             "longitud",
		"currency_code":       "codigo_moneda",
		"fx_rate_to_usd":      "tasa_cambio_usd",
		"processing_status":   "estado_procesamiento",
		"dq_completeness_pct": "pct_completitud",
		"dq_validity_pct":     "pct_validez",
		"record_hash":         "hash_registro",
		"tags":                "etiquetas",
		"notes":               "notas",

		"customer_id":       "id_cliente",
		"first_name":        "nombre",
		"last_name":         "apellido",
		"full_name":         "nombre_completo",
		"email":             "correo_electronico",
		"phone":             "telefono",
		"address":           "direccion",
		"city":              "ciudad",
		"state":             "provincia",
		"country":           "pais",
		"postal_code":       "codigo_postal",
		"birth_date":        "fecha_nacimiento",
		"gender":            "genero",
		"marital_status":    "estado_civil",
		"registration_date": "fecha_registro",

		"product_id":       "id_producto",
		"product_name":     "nombre_producto",
		"category":         "categoria",
		"brand":            "marca",
		"unit_price":       "precio_unitario",
		"list_price":       "precio_lista",
		"cost_unit":        "costo_unitario",
		"supplier_name":    "nombre_proveedor",
		"quantity_on_hand": "cantidad_inventario",
		"reorder_level":    "nivel_reorden",
		"ingredient_name":  "nombre_ingrediente",
		"production_date":  "fecha_produccion",
		"expiry_date":      "fecha_vencimiento",
		"batch_size":       "tamano_lote",

		"transaction_id":  "id_transaccion",
		"ticket_id":       "id_ticket",
		"qty":             "cantidad",
		"line_total":      "total_linea",
		"payment_method":  "metodo_pago",
		"tax_amount":      "monto_impuesto",
		"discount_amount": "monto_descuento",
		"store_name":      "nombre_tienda",
		"store_type":      "tipo_tienda",
		"cashier_id":      "id_cajero",

		"employee_id":        "id_empleado",
		"job_title":          "cargo",
		"salary_base_annual": "salario_base_anual",
		"hire_date":          "fecha_contratacion",
	},
}

// TranslateDataset renames every row's columns into lang. The input rows are
// not modified. Unknown languages are an error for the caller to absorb.
func TranslateDataset(rows []map[string]any, lang string) ([]map[string]any, error) {
	table, ok := columnTranslations[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported translation language: %s", lang)
	}

	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		translated := make(map[string]any, len(row))
		for field, value := range row {
			name := field
			if t, ok := table[field]; ok {
				name = t
			}
			translated[name] = value
		}
		out = append(out, translated)
	}
	return out, nil
}

// Languages lists the supported translation targets.
func Languages() []string {
	return []string{"es"}
}
